package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float that also accepts a numeric string, as sent by HTML forms.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%s is not a number", data)
	}
	*n = Number(f)
	return nil
}

func (n *Number) Float() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}

type CreateHotelRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Location    string  `json:"location" validate:"required,max=200"`
	Price       *Number `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	Rating      *Number `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	BestSeller  *bool   `json:"bestSeller,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateHotelRequest is a partial update; nil fields keep their value.
type UpdateHotelRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Price       *Number `json:"price,omitempty" validate:"omitempty,gt=0"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Rating      *Number `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	BestSeller  *bool   `json:"bestSeller,omitempty"`
	Description *string `json:"description,omitempty"`
}
