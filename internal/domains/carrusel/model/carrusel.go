package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CarruselFoto struct {
	ID            int64     `json:"id"`
	URL           string    `json:"url"`
	Orden         int       `json:"orden"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type CarruselFotoRequest struct {
	URL   string `json:"url"`
	Orden *int   `json:"orden"`
}

func (r CarruselFotoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required.Error("url is required"), validation.Length(1, 500)),
		validation.Field(&r.Orden, validation.NotNil.Error("orden is required")),
	)
}

func (r *CarruselFotoRequest) ToModel() *CarruselFoto {
	f := &CarruselFoto{URL: strings.TrimSpace(r.URL)}
	if r.Orden != nil {
		f.Orden = *r.Orden
	}
	return f
}
