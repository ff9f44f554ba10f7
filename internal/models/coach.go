package models

type Coach struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Experience     *string `json:"experience"`
	Specialization *string `json:"specialization"`
	PhotoURL       *string `json:"photo_url"`
	PhotoHandle    *string `json:"-"`
	Section        Section `json:"section"`
}

func (c *Coach) Photo() StoredImage {
	return imageFrom(c.PhotoURL, c.PhotoHandle)
}
