// pkg/aur/rpc.go
package aur

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/daradege/dastore/pkg/core"
)

// RPCClient talks to the AUR metadata RPC (v5). It covers search and info
// only; building and installing always goes through a helper.
type RPCClient struct {
	rest *resty.Client
}

type rpcPackage struct {
	Name        string   `json:"Name"`
	Version     string   `json:"Version"`
	Description string   `json:"Description"`
	URL         string   `json:"URL"`
	License     []string `json:"License"`
	Depends     []string `json:"Depends"`
	Provides    []string `json:"Provides"`
	Conflicts   []string `json:"Conflicts"`
	Replaces    []string `json:"Replaces"`
	Groups      []string `json:"Groups"`
}

type rpcResponse struct {
	ResultCount int          `json:"resultcount"`
	Results     []rpcPackage `json:"results"`
	Type        string       `json:"type"`
	Error       string       `json:"error"`
}

func NewRPCClient(baseURL string, timeout time.Duration) *RPCClient {
	return &RPCClient{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("User-Agent", "dastore"),
	}
}

// Search queries the RPC by name and description.
func (c *RPCClient) Search(ctx context.Context, query string) ([]*core.Package, error) {
	var out rpcResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("by", "name-desc").
		SetResult(&out).
		Get("/rpc/v5/search/" + query)
	if err != nil {
		return nil, errors.Wrap(err, "AUR RPC search")
	}
	if resp.IsError() {
		return nil, errors.Errorf("AUR RPC search: status %s", resp.Status())
	}
	if out.Type == "error" {
		return nil, errors.Errorf("AUR RPC search: %s", out.Error)
	}

	packages := make([]*core.Package, 0, len(out.Results))
	for _, r := range out.Results {
		packages = append(packages, r.toPackage())
	}
	return packages, nil
}

// Info retrieves one package's metadata from the RPC.
func (c *RPCClient) Info(ctx context.Context, name string) (*core.Package, error) {
	var out rpcResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("arg[]", name).
		SetResult(&out).
		Get("/rpc/v5/info")
	if err != nil {
		return nil, errors.Wrap(err, "AUR RPC info")
	}
	if resp.IsError() {
		return nil, errors.Errorf("AUR RPC info: status %s", resp.Status())
	}
	if len(out.Results) == 0 {
		return nil, errors.Errorf("package %s not found in AUR", name)
	}
	return out.Results[0].toPackage(), nil
}

func (r rpcPackage) toPackage() *core.Package {
	return &core.Package{
		Name:        r.Name,
		Version:     r.Version,
		Description: r.Description,
		Repository:  core.RepoAUR,
		URL:         r.URL,
		Licenses:    strings.Join(r.License, " "),
		Groups:      strings.Join(r.Groups, " "),
		Depends:     r.Depends,
		Provides:    r.Provides,
		Conflicts:   r.Conflicts,
		Replaces:    r.Replaces,
	}
}
