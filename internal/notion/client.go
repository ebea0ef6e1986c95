package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the document service's REST API. Every request carries the
// bearer credential and the fixed API-version header.
type Client struct {
	baseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, apiVersion, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiVersion: apiVersion,
		token:      token,
		httpClient: &http.Client{},
	}
}

type searchRequest struct {
	Filter searchFilter `json:"filter"`
}

type searchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

type searchResponse struct {
	Results []databaseObject `json:"results"`
}

type databaseObject struct {
	ID         string                    `json:"id"`
	Title      []richTextObject          `json:"title"`
	Properties map[string]propertyObject `json:"properties"`
}

type richTextObject struct {
	PlainText string `json:"plain_text"`
	Text      *struct {
		Content string `json:"content"`
	} `json:"text"`
}

type propertyObject struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Select      *optionList `json:"select"`
	MultiSelect *optionList `json:"multi_select"`
}

type optionList struct {
	Options []struct {
		Name string `json:"name"`
	} `json:"options"`
}

type createPageRequest struct {
	Parent     pageParent               `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
	Children   []Block                  `json:"children,omitempty"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type createPageResponse struct {
	ID string `json:"id"`
}

// SearchDatabases lists every database shared with the credential. An empty
// result is not an error.
func (c *Client) SearchDatabases(ctx context.Context) ([]Database, error) {
	body := searchRequest{Filter: searchFilter{Value: "database", Property: "object"}}
	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/search", body, &resp); err != nil {
		return nil, err
	}

	databases := make([]Database, 0, len(resp.Results))
	for _, raw := range resp.Results {
		databases = append(databases, databaseFromObject(raw))
	}
	return databases, nil
}

// GetDatabase fetches one database's full property schema.
func (c *Client) GetDatabase(ctx context.Context, id string) (*Database, error) {
	var raw databaseObject
	if err := c.do(ctx, http.MethodGet, "/databases/"+id, nil, &raw); err != nil {
		return nil, err
	}
	db := databaseFromObject(raw)
	return &db, nil
}

// CreatePage creates a record in the given database and returns the new
// record's identifier.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue, children []Block) (string, error) {
	body := createPageRequest{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: properties,
		Children:   children,
	}
	var resp createPageResponse
	if err := c.do(ctx, http.MethodPost, "/pages", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &AuthError{Status: resp.StatusCode, Message: upstreamMessage(data)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code, message := upstreamError(data)
		return &APIError{Status: resp.StatusCode, Code: code, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func upstreamMessage(data []byte) string {
	_, message := upstreamError(data)
	return message
}

func upstreamError(data []byte) (code, message string) {
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", ""
	}
	return payload.Code, payload.Message
}

func databaseFromObject(raw databaseObject) Database {
	db := Database{ID: raw.ID, Title: flattenTitle(raw.Title)}
	if len(raw.Properties) > 0 {
		db.Properties = make(map[string]PropertySchema, len(raw.Properties))
		for name, prop := range raw.Properties {
			db.Properties[name] = propertySchemaFromObject(name, prop)
		}
	}
	return db
}

func propertySchemaFromObject(name string, prop propertyObject) PropertySchema {
	schema := PropertySchema{Name: name, Type: ParsePropertyType(prop.Type)}
	if prop.Name != "" {
		schema.Name = prop.Name
	}
	switch schema.Type {
	case TypeSelect:
		schema.Options = optionNames(prop.Select)
	case TypeMultiSelect:
		schema.Options = optionNames(prop.MultiSelect)
	}
	return schema
}

func optionNames(list *optionList) []string {
	if list == nil || len(list.Options) == 0 {
		return nil
	}
	names := make([]string, 0, len(list.Options))
	for _, option := range list.Options {
		names = append(names, option.Name)
	}
	return names
}

func flattenTitle(spans []richTextObject) string {
	var b strings.Builder
	for _, span := range spans {
		if span.PlainText != "" {
			b.WriteString(span.PlainText)
			continue
		}
		if span.Text != nil {
			b.WriteString(span.Text.Content)
		}
	}
	if b.Len() == 0 {
		return "Untitled"
	}
	return b.String()
}
