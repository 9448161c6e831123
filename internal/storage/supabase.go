package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseStore talks to the Supabase Storage REST API of a single bucket.
type SupabaseStore struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

func NewSupabaseStore(url, key, bucket string) *SupabaseStore {
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}
	return &SupabaseStore{
		baseURL: strings.TrimRight(url, "/"),
		apiKey:  key,
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, path string, body io.Reader, contentType string) error {
	endpoint := fmt.Sprintf("/object/%s/%s", s.bucket, strings.TrimLeft(path, "/"))
	_, err := s.makeRequest(ctx, http.MethodPost, endpoint, body, map[string]string{
		"Content-Type": contentType,
		"x-upsert":     "false",
	})
	return err
}

func (s *SupabaseStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, strings.TrimLeft(path, "/"))
}

func (s *SupabaseStore) Remove(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	payload, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	_, err = s.makeRequest(ctx, http.MethodDelete, "/object/"+s.bucket, bytes.NewReader(payload), map[string]string{
		"Content-Type": "application/json",
	})
	return err
}

func (s *SupabaseStore) makeRequest(ctx context.Context, method, endpoint string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/storage/v1"+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("storage request failed with status %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
