package futbollibre

// Upstream document shape. Decoding into explicit types keeps schema
// validation at the adapter boundary; fields the mapper does not trust are
// checked record by record instead of assumed present.
type document struct {
	Data []record `json:"data"`
}

type record struct {
	ID         int              `json:"id"`
	Attributes recordAttributes `json:"attributes"`
}

type recordAttributes struct {
	DateDiary        string  `json:"date_diary"`
	DiaryHour        string  `json:"diary_hour"`
	DiaryDescription string  `json:"diary_description"`
	Country          country `json:"country"`
	Embeds           embeds  `json:"embeds"`
}

type country struct {
	Data *countryData `json:"data"`
}

type countryData struct {
	Attributes countryAttributes `json:"attributes"`
}

type countryAttributes struct {
	Name string `json:"name"`
}

type embeds struct {
	Data []embed `json:"data"`
}

type embed struct {
	Attributes embedAttributes `json:"attributes"`
}

type embedAttributes struct {
	EmbedName        string `json:"embed_name"`
	IframeURL        string `json:"iframe_url"`
	DecodedIframeURL string `json:"decoded_iframe_url"`
}
