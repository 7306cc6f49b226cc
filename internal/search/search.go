// Package search runs the two user-facing flows against the job-search API:
// the latest-listings search and the latest-job detail lookup.
package search

import (
	"context"
	"errors"
	"log"

	"jobboerse-cli/internal/domain"
	"jobboerse-cli/internal/jobsuche"
	"jobboerse-cli/internal/rank"
)

// API is the subset of *jobsuche.Client the flows need.
type API interface {
	Search(ctx context.Context, p jobsuche.SearchParams) (*jobsuche.SearchResponse, error)
	Detail(ctx context.Context, hashID string) (*jobsuche.DetailResponse, error)
}

type Service struct {
	API        API
	JobURLBase string
}

// Result is the outcome of a search. Upstream is set when the API answered
// with a non-200 status and the run was treated as having no results.
type Result struct {
	Jobs     []domain.JobSummary
	Total    string // upstream maxErgebnisse, "" when absent
	Upstream *jobsuche.StatusError
}

// Latest fetches one page, maps it and orders it newest first. A non-200
// search response is not an error: it yields an empty Result.
func (s *Service) Latest(ctx context.Context, p jobsuche.SearchParams) (Result, error) {
	resp, err := s.API.Search(ctx, p)
	var se *jobsuche.StatusError
	if errors.As(err, &se) {
		log.Printf("[search] upstream status=%d body=%q; treating as no results", se.StatusCode, se.Body)
		return Result{Upstream: se}, nil
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Jobs: jobsuche.MapSummaries(resp, s.JobURLBase)}
	if resp.MaxErgebnisse != nil {
		res.Total = string(*resp.MaxErgebnisse)
	}
	if len(res.Jobs) == 0 {
		log.Printf("[search] no listings for beruf=%q arbeitsort=%q", p.Keyword, p.Location)
		return res, nil
	}

	rank.SortByModified(res.Jobs)
	log.Printf("[search] beruf=%q arbeitsort=%q got=%d total=%s", p.Keyword, p.Location, len(res.Jobs), res.Total)
	return res, nil
}

// LatestDetail picks the newest listing of one page (rank.ByModified) and
// fetches its detail document. It returns (nil, nil) when the search has no
// listings and jobsuche.ErrNoHashID when the newest one cannot be looked up.
// Every upstream failure, search or detail, is returned.
func (s *Service) LatestDetail(ctx context.Context, p jobsuche.SearchParams) (*domain.JobDetail, error) {
	resp, err := s.API.Search(ctx, p)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Listings) == 0 {
		log.Printf("[detail] no listings for beruf=%q arbeitsort=%q", p.Keyword, p.Location)
		return nil, nil
	}

	latest, _ := rank.Latest(resp.Listings, jobsuche.Listing.Modified)
	hash := latest.Hash()
	if hash == "" {
		return nil, jobsuche.ErrNoHashID
	}

	doc, err := s.API.Detail(ctx, hash)
	if err != nil {
		return nil, err
	}
	d := jobsuche.MapDetail(doc, hash, s.JobURLBase)
	return &d, nil
}
