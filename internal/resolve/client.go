// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns free-text compound queries into normalized compound
// records via the PubChem PUG REST API: name suggestions, name→CID lookup,
// and one batched property fetch per query.
// See docs/ARCHITECTURE.md § Compound Resolution.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/chemsearch/internal/httputil"
	"github.com/pdiddy/chemsearch/pkg/types"
)

// PubChem endpoint bases. Declared as vars so tests can substitute
// httptest servers.
var (
	autocompleteBase = "https://pubchem.ncbi.nlm.nih.gov/rest/autocomplete/compound/"
	pugBase          = "https://pubchem.ncbi.nlm.nih.gov/rest/pug/compound/"
)

// compoundProperties is the property list requested from the batched
// property endpoint.
const compoundProperties = "MolecularFormula,MolecularWeight,IUPACName,CanonicalSMILES,Title"

// Client is a thin PubChem PUG REST client. A nil HTTP client falls back
// to http.DefaultClient.
type Client struct {
	HTTP       *http.Client
	UserAgent  string
	MaxRetries int
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// get issues a GET with the configured User-Agent, retrying on rate limits.
func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return httputil.DoWithRetry(ctx, c.httpClient(), req, c.MaxRetries)
}

// Suggest queries the autocomplete endpoint for up to limit candidate
// compound names matching the free-text query. Zero suggestions is not an
// error.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = types.DefaultMaxResults
	}
	reqURL := autocompleteBase + url.PathEscape(query) + "/json?limit=" + strconv.Itoa(limit)

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("autocomplete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("autocomplete endpoint returned HTTP %d", resp.StatusCode)
	}

	var ar autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("parsing autocomplete response: %w", err)
	}
	return ar.DictionaryTerms.Compound, nil
}

// CIDForName resolves a compound name to its CID. A name PubChem does not
// know returns (0, nil): no identifier, not a failure.
func (c *Client) CIDForName(ctx context.Context, name string) (int, error) {
	reqURL := pugBase + "name/" + url.PathEscape(name) + "/cids/JSON"

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return 0, fmt.Errorf("cid lookup request: %w", err)
	}
	defer resp.Body.Close()

	// PubChem answers 404 for unknown names.
	if resp.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("cid lookup returned HTTP %d", resp.StatusCode)
	}

	var ir identifierResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return 0, fmt.Errorf("parsing cid lookup response: %w", err)
	}
	if len(ir.IdentifierList.CID) == 0 {
		return 0, nil
	}
	return ir.IdentifierList.CID[0], nil
}

// Properties fetches property records for all given CIDs in a single
// batched call. Record order follows the response, not the input. Each
// record's Name is the PubChem title when present, otherwise synthesized
// from the CID.
func (c *Client) Properties(ctx context.Context, cids []int) ([]types.CompoundRecord, error) {
	if len(cids) == 0 {
		return nil, nil
	}

	parts := make([]string, len(cids))
	for i, cid := range cids {
		parts[i] = strconv.Itoa(cid)
	}
	reqURL := pugBase + "cid/" + strings.Join(parts, ",") + "/property/" + compoundProperties + "/JSON"

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("property request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("property endpoint returned HTTP %d", resp.StatusCode)
	}

	var pr propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("parsing property response: %w", err)
	}

	var records []types.CompoundRecord
	for _, row := range pr.PropertyTable.Properties {
		if row.CID <= 0 {
			continue
		}
		rec := types.CompoundRecord{
			CID:              row.CID,
			Name:             row.Title,
			MolecularFormula: row.MolecularFormula,
			MolecularWeight:  float64(row.MolecularWeight),
			IUPACName:        row.IUPACName,
			CanonicalSMILES:  row.CanonicalSMILES,
			Source:           types.SourcePubChem,
		}
		if rec.Name == "" {
			rec.Name = types.SynthesizedName(rec.CID)
		}
		records = append(records, rec)
	}
	return records, nil
}

// weight decodes a molecular weight that PubChem serializes either as a
// JSON number or as a quoted string. Unparseable or negative values
// degrade to zero ("unknown").
type weight float64

func (w *weight) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*w = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		*w = 0
		return nil
	}
	*w = weight(f)
	return nil
}

// PubChem API JSON structures.

type autocompleteResponse struct {
	DictionaryTerms struct {
		Compound []string `json:"compound"`
	} `json:"dictionary_terms"`
	Total int `json:"total"`
}

type identifierResponse struct {
	IdentifierList struct {
		CID []int `json:"CID"`
	} `json:"IdentifierList"`
}

type propertyResponse struct {
	PropertyTable struct {
		Properties []propertyRow `json:"Properties"`
	} `json:"PropertyTable"`
}

type propertyRow struct {
	CID              int    `json:"CID"`
	MolecularFormula string `json:"MolecularFormula"`
	MolecularWeight  weight `json:"MolecularWeight"`
	IUPACName        string `json:"IUPACName"`
	CanonicalSMILES  string `json:"CanonicalSMILES"`
	Title            string `json:"Title"`
}
