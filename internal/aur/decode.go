// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aur

import (
	"encoding/json"
	"fmt"

	"github.com/pdiddy/aurman/pkg/types"
)

// RPC JSON structures. Pointer fields distinguish absent keys from zero
// values; nullable strings decode to nil.
type rpcResponse struct {
	Type        string        `json:"type"`
	Error       string        `json:"error"`
	ResultCount *int          `json:"resultcount"`
	Results     *[]rpcPackage `json:"results"`
}

type rpcPackage struct {
	Name        *string  `json:"Name"`
	Version     *string  `json:"Version"`
	Description *string  `json:"Description"`
	URL         *string  `json:"URL"`
	Maintainer  *string  `json:"Maintainer"`
	Popularity  *float64 `json:"Popularity"`
	NumVotes    *int     `json:"NumVotes"`
}

// DecodeSearch parses a search response body.
func DecodeSearch(body []byte) ([]types.SearchResult, error) {
	pkgs, err := decode(body)
	if err != nil {
		return nil, err
	}
	results := make([]types.SearchResult, len(pkgs))
	for i, p := range pkgs {
		r, err := p.searchResult()
		if err != nil {
			return nil, fmt.Errorf("%w: result %d: %v", ErrMalformedResponse, i, err)
		}
		results[i] = r
	}
	return results, nil
}

// DecodeInfo parses an info response body. The caller decides what a
// count other than one means.
func DecodeInfo(body []byte) ([]types.PackageInfo, error) {
	pkgs, err := decode(body)
	if err != nil {
		return nil, err
	}
	infos := make([]types.PackageInfo, len(pkgs))
	for i, p := range pkgs {
		r, err := p.searchResult()
		if err != nil {
			return nil, fmt.Errorf("%w: result %d: %v", ErrMalformedResponse, i, err)
		}
		if p.NumVotes == nil {
			return nil, fmt.Errorf("%w: result %d: missing NumVotes", ErrMalformedResponse, i)
		}
		infos[i] = types.PackageInfo{
			SearchResult: r,
			URL:          deref(p.URL),
			NumVotes:     *p.NumVotes,
		}
	}
	return infos, nil
}

// decode validates the envelope and returns its results.
func decode(body []byte) ([]rpcPackage, error) {
	var resp rpcResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.Type == "error" {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Error)
	}
	if resp.ResultCount == nil {
		return nil, fmt.Errorf("%w: missing resultcount", ErrMalformedResponse)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrMalformedResponse)
	}
	if n := len(*resp.Results); *resp.ResultCount != n {
		return nil, fmt.Errorf("%w: resultcount %d but %d results", ErrMalformedResponse, *resp.ResultCount, n)
	}
	return *resp.Results, nil
}

func (p rpcPackage) searchResult() (types.SearchResult, error) {
	switch {
	case p.Name == nil:
		return types.SearchResult{}, fmt.Errorf("missing Name")
	case p.Version == nil:
		return types.SearchResult{}, fmt.Errorf("missing Version")
	case p.Popularity == nil:
		return types.SearchResult{}, fmt.Errorf("missing Popularity")
	}
	return types.SearchResult{
		Maintainer:  deref(p.Maintainer),
		Name:        *p.Name,
		Version:     *p.Version,
		Description: deref(p.Description),
		Popularity:  *p.Popularity,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
