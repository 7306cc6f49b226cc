package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a trimmed copy of cfg and what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.API.SearchURL = strings.TrimSpace(out.API.SearchURL)
	out.API.DetailURL = strings.TrimSpace(out.API.DetailURL)
	out.API.JobURLBase = strings.TrimSpace(out.API.JobURLBase)
	out.API.Key = strings.TrimSpace(out.API.Key)
	out.API.UserAgent = strings.TrimSpace(out.API.UserAgent)
	out.Export.CSVPath = strings.TrimSpace(out.Export.CSVPath)
	out.Store.Path = strings.TrimSpace(out.Store.Path)

	// detail endpoint takes the hash as the last path segment
	if out.API.DetailURL != "" && !strings.HasSuffix(out.API.DetailURL, "/") {
		out.API.DetailURL += "/"
	}

	checkURL := func(name, raw string) {
		if raw == "" {
			res.addErr("%s is required", name)
			return
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("%s is not an absolute URL: %q", name, raw)
		}
	}
	checkURL("api.search_url", out.API.SearchURL)
	checkURL("api.detail_url", out.API.DetailURL)
	checkURL("api.job_url_base", out.API.JobURLBase)

	if out.API.Key == "" {
		res.addErr("api.key is required")
	}
	if out.API.UserAgent == "" {
		res.addWarn("api.user_agent is empty; the API may reject anonymous clients.")
	}
	if out.API.TimeoutSeconds <= 0 {
		res.addErr("api.timeout_seconds must be > 0")
	}

	if out.Search.PageSize <= 0 {
		res.addErr("search.page_size must be > 0")
	} else if out.Search.PageSize > 100 {
		res.addWarn("search.page_size is %d; the API caps a page at 100.", out.Search.PageSize)
	}
	if out.Search.Page <= 0 {
		res.addErr("search.page must be >= 1")
	}
	if out.Search.DetailSize <= 0 {
		res.addErr("search.detail_size must be > 0")
	}
	if out.Search.Top <= 0 {
		res.addErr("search.top must be > 0")
	}

	if out.Export.CSVPath == "" {
		res.addErr("export.csv_path is required")
	}

	return out, res
}
