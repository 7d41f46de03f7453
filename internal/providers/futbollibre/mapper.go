package futbollibre

import (
	"fmt"
	"strings"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/slug"
)

// mapRecord normalizes one upstream record into a canonical match. The
// date and clock time are interpreted in the feed's fixed-offset zone and
// converted to UTC; an unparseable pair fails only this record.
func mapRecord(rec record, loc *time.Location) (domain.Match, error) {
	attr := rec.Attributes

	kickoff, err := time.ParseInLocation(dateTimeLayout, attr.DateDiary+" "+attr.DiaryHour, loc)
	if err != nil {
		return domain.Match{}, fmt.Errorf("parse kickoff %q %q: %w", attr.DateDiary, attr.DiaryHour, err)
	}

	title := strings.TrimSpace(attr.DiaryDescription)
	if title == "" {
		title = fallbackTitle
	}

	league := fallbackLeague
	if attr.Country.Data != nil {
		if name := strings.TrimSpace(attr.Country.Data.Attributes.Name); name != "" {
			league = name
		}
	}

	channels := make([]domain.Channel, 0, len(attr.Embeds.Data))
	for _, e := range attr.Embeds.Data {
		// Some records carry both a raw embed URL and a pre-decoded direct
		// URL; the decoded one wins when present.
		url := e.Attributes.DecodedIframeURL
		if url == "" {
			url = e.Attributes.IframeURL
		}
		name := strings.TrimSpace(e.Attributes.EmbedName)
		if name == "" {
			name = fallbackChannelName
		}
		channels = append(channels, domain.Channel{Name: name, URL: url})
	}

	return domain.Match{
		ID:       fmt.Sprintf("%s-%s-%d", idPrefix, slug.Make(title), rec.ID),
		Title:    title,
		League:   league,
		Date:     attr.DateDiary,
		Time:     attr.DiaryHour,
		Kickoff:  kickoff.UTC(),
		Source:   domain.SourceFutbolLibre,
		Channels: channels,
	}, nil
}
