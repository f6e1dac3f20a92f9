/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package variables

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bennypowers.dev/tokensync/internal/version"
)

const (
	// DefaultTimeout bounds a remote export request.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the largest remote export accepted (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

var (
	// ErrRemoteStatus indicates a non-200 response for a remote export.
	ErrRemoteStatus = errors.New("unexpected response status")

	// ErrTooLarge indicates a remote export over the size limit.
	ErrTooLarge = errors.New("remote export too large")
)

// Remote loads variables exports published over http(s), such as a CI
// artifact or a plugin's sync endpoint. The zero value uses
// http.DefaultClient, DefaultTimeout and DefaultMaxSize.
type Remote struct {
	Client  *http.Client
	Timeout time.Duration
	MaxSize int64
}

// DefaultRemote loads the http(s) patterns given to Load.
var DefaultRemote = &Remote{}

// IsURL reports whether pattern names a remote export.
func IsURL(pattern string) bool {
	return strings.HasPrefix(pattern, "https://") || strings.HasPrefix(pattern, "http://")
}

// Load fetches and parses the export at url.
func (r *Remote) Load(ctx context.Context, url string) (List, error) {
	data, err := r.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return list, nil
}

func (r *Remote) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, cmp.Or(r.Timeout, DefaultTimeout))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")
	req.Header.Set("User-Agent", "tokensync/"+version.Get())

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrRemoteStatus, resp.Status)
	}

	limit := cmp.Or(r.MaxSize, DefaultMaxSize)
	if resp.ContentLength > limit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, resp.ContentLength, limit)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
