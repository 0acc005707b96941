package http

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client bound to a base URL with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	defaultHeaders     map[string]string
	defaultContentType string
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
	}
}

// Request creates a new Request builder for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters, headers, and response types.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Get(path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(http.MethodGet, path, queryParams, headers, nil, successResp, errorResp)
}

// Post sends a POST request to the specified path with optional query parameters, headers, and response types.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Post(path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(http.MethodPost, path, queryParams, headers, body, successResp, errorResp)
}

// doRequest builds the URL, marshals the body, executes the request and unmarshals
// the response into successResp or errorResp depending on the status code.
func (hc *Client) doRequest(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	url := hc.buildURL(path)
	if len(queryParams) > 0 {
		url += "?" + buildQueryString(queryParams)
	}

	var bodyReader io.Reader
	var contentType string

	if body != nil {
		contentType = hc.defaultContentType

		switch contentType {
		case "application/xml":
			xmlBody, err := xml.Marshal(body)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("failed to marshal request body to XML: %w", err)
			}
			bodyReader = bytes.NewBuffer(xmlBody)
		default:
			jsonBody, err := json.Marshal(body)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("failed to marshal request body to JSON: %w", err)
			}
			bodyReader = bytes.NewBuffer(jsonBody)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil {
			err = hc.unmarshalResponse(bodyBytes, respContentType, successResp)
			if err != nil {
				return nil, nil, resp.StatusCode, err
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	if errorResp != nil {
		err = hc.unmarshalResponse(bodyBytes, respContentType, errorResp)
		if err != nil {
			return nil, nil, resp.StatusCode, fmt.Errorf("http error: status %d", resp.StatusCode)
		}
	}

	return nil, errorResp, resp.StatusCode, fmt.Errorf("http error: status %d", resp.StatusCode)
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return strings.TrimRight(hc.baseURL, "/") + path
}

// buildQueryString builds a query string from parameters
func buildQueryString(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	var parts []string
	for key, value := range params {
		parts = append(parts, fmt.Sprintf("%s=%s", key, url.QueryEscape(value)))
	}

	return strings.Join(parts, "&")
}
