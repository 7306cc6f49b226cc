package jobsuche

import (
	"strings"

	"jobboerse-cli/internal/domain"
	"jobboerse-cli/internal/util"
)

// JobURL interpolates a hash identifier into the public posting URL.
func JobURL(base, hashID string) string {
	return base + hashID
}

func orNA(t *Text) string {
	if t == nil {
		return domain.NA
	}
	return string(*t)
}

// MapSummaries flattens every listing of resp, in response order.
// A nil response or a missing listings array yields no records.
func MapSummaries(resp *SearchResponse, jobURLBase string) []domain.JobSummary {
	if resp == nil || len(resp.Listings) == 0 {
		return nil
	}
	out := make([]domain.JobSummary, 0, len(resp.Listings))
	for _, l := range resp.Listings {
		out = append(out, MapSummary(l, jobURLBase))
	}
	return out
}

func MapSummary(l Listing, jobURLBase string) domain.JobSummary {
	var (
		ort    Arbeitsort
		coords Koordinaten
	)
	if l.Arbeitsort != nil {
		ort = *l.Arbeitsort
	}
	if ort.Koordinaten != nil {
		coords = *ort.Koordinaten
	}

	return domain.JobSummary{
		Title:      orNA(l.Beruf),
		Company:    orNA(l.Arbeitgeber),
		Location:   orNA(ort.Ort),
		PostalCode: orNA(ort.Plz),
		Street:     orNA(ort.Strasse),
		Region:     orNA(ort.Region),
		Country:    orNA(ort.Land),
		Latitude:   orNA(coords.Lat),
		Longitude:  orNA(coords.Lon),
		RefNr:      orNA(l.Refnr),
		Modified:   orNA(l.ModifikationsTimestamp),
		URL:        JobURL(jobURLBase, l.Hash()),
	}
}

// MapDetail flattens a detail document fetched for hashID.
func MapDetail(d *DetailResponse, hashID, jobURLBase string) domain.JobDetail {
	if d == nil {
		d = &DetailResponse{}
	}

	locations := domain.NA
	if len(d.Arbeitsorte) > 0 {
		names := make([]string, 0, len(d.Arbeitsorte))
		for _, o := range d.Arbeitsorte {
			names = append(names, orNA(o.Ort))
		}
		locations = strings.Join(names, ", ")
	}

	desc := domain.NA
	if d.Stellenbeschreibung != nil {
		desc = util.PlainText(string(*d.Stellenbeschreibung))
	}

	return domain.JobDetail{
		Title:          orNA(d.Titel),
		Company:        orNA(d.Arbeitgeber),
		Locations:      locations,
		Branch:         orNA(d.Branche),
		EmploymentType: orNA(d.Angebotsart),
		Contract:       orNA(d.Befristung),
		Salary:         orNA(d.Verguetung),
		PublishedOn:    orNA(d.AktuelleVeroeffentlichungsdatum),
		ModifiedOn:     orNA(d.ModifikationsTimestamp),
		Description:    desc,
		RefNr:          orNA(d.Refnr),
		URL:            JobURL(jobURLBase, hashID),
	}
}
