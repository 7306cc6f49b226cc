package jobsuche

import (
	"bytes"
	"encoding/json"
)

// Text is a scalar field of unknown JSON type. Strings are kept as-is;
// numbers and booleans keep their literal form. A nil *Text means the
// field was absent or null.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

// Search response (pc/v4/jobs). Only the fields we map are declared.
type SearchResponse struct {
	Listings      []Listing `json:"stellenangebote"`
	MaxErgebnisse *Text     `json:"maxErgebnisse"` // total hits across all pages
}

type Listing struct {
	Beruf                  *Text       `json:"beruf"`
	Arbeitgeber            *Text       `json:"arbeitgeber"`
	Refnr                  *Text       `json:"refnr"`
	ModifikationsTimestamp *Text       `json:"modifikationsTimestamp"`
	HashID                 *Text       `json:"hashId"`
	Arbeitsort             *Arbeitsort `json:"arbeitsort"`
}

// Hash returns the listing's hash identifier, or "" when absent.
func (l Listing) Hash() string {
	if l.HashID == nil {
		return ""
	}
	return string(*l.HashID)
}

// Modified returns the raw modification timestamp, or "" when absent.
func (l Listing) Modified() string {
	if l.ModifikationsTimestamp == nil {
		return ""
	}
	return string(*l.ModifikationsTimestamp)
}

type Arbeitsort struct {
	Ort         *Text        `json:"ort"`
	Plz         *Text        `json:"plz"`
	Strasse     *Text        `json:"strasse"`
	Region      *Text        `json:"region"`
	Land        *Text        `json:"land"`
	Koordinaten *Koordinaten `json:"koordinaten"`
}

type Koordinaten struct {
	Lat *Text `json:"lat"`
	Lon *Text `json:"lon"`
}

// Detail response (pc/v2/jobdetails/{hashId}).
type DetailResponse struct {
	Titel                           *Text        `json:"titel"`
	Arbeitgeber                     *Text        `json:"arbeitgeber"`
	Arbeitsorte                     []Arbeitsort `json:"arbeitsorte"`
	Branche                         *Text        `json:"branche"`
	Angebotsart                     *Text        `json:"angebotsart"`
	Befristung                      *Text        `json:"befristung"`
	Verguetung                      *Text        `json:"verguetung"`
	AktuelleVeroeffentlichungsdatum *Text        `json:"aktuelleVeroeffentlichungsdatum"`
	ModifikationsTimestamp          *Text        `json:"modifikationsTimestamp"`
	Stellenbeschreibung             *Text        `json:"stellenbeschreibung"`
	Refnr                           *Text        `json:"refnr"`
}
