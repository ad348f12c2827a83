package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"linkfatec/internal/config"
	"linkfatec/internal/errors"
	"linkfatec/internal/telemetry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("linkfatec/api")

const requestIDHeader = "X-Request-ID"

// Response is what a service call hands back: the status line plus the body,
// decoded into T only when the status is 2xx.
type Response[T any] struct {
	StatusCode int
	Body       T
	ErrorBody  []byte
}

func (r *Response[T]) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// FilePart is a single file field of a multipart request.
type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// RestClient binds relative endpoint paths to the configured backend.
type RestClient struct {
	client  *http.Client
	baseURL *url.URL
	logger  *zap.Logger
}

func NewRestClient(logger *zap.Logger, cfg *config.Config) (*RestClient, error) {
	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, errors.InvalidInput("parsing base url", err)
	}
	return &RestClient{
		client: &http.Client{
			Timeout: cfg.APITimeout,
		},
		baseURL: base,
		logger:  logger,
	}, nil
}

func (c *RestClient) resolve(path string) string {
	return c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")}).String()
}

func (c *RestClient) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

func (c *RestClient) PostForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (c *RestClient) PostMultipart(ctx context.Context, path string, fields url.Values, file FilePart) (*http.Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return nil, errors.Internal("writing multipart field", err)
			}
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.FileName))
	header.Set("Content-Type", file.ContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, errors.Internal("creating multipart file part", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, errors.Internal("writing multipart file part", err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Internal("closing multipart body", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
}

func (c *RestClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	ctx, span := tracer.Start(ctx, method+" "+path)
	defer span.End()

	target := c.resolve(path)
	requestID := uuid.NewString()
	span.SetAttributes(
		telemetry.String("http.method", method),
		telemetry.String("http.url", target),
		telemetry.String("request.id", requestID),
	)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		telemetry.Fail(span, err)
		return nil, errors.Internal("creating request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug("sending request",
		zap.String("method", method),
		zap.String("url", target),
		zap.String("request_id", requestID))

	resp, err := c.client.Do(req)
	if err != nil {
		telemetry.Fail(span, err)
		c.logger.Error("failed to execute request",
			zap.String("url", target),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, errors.Transport("executing request", err)
	}

	span.SetAttributes(telemetry.Int("http.status_code", resp.StatusCode))
	return resp, nil
}

// decode reads resp fully and closes it. On a 2xx status the body is decoded
// into T; otherwise it is kept raw in ErrorBody.
func decode[T any](logger *zap.Logger, resp *http.Response) (*Response[T], error) {
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	out := &Response[T]{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport("reading response body", err)
	}

	if !out.IsSuccessful() {
		out.ErrorBody = data
		return out, nil
	}

	switch body := any(&out.Body).(type) {
	case *[]byte:
		*body = data
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return out, nil
		}
		if err := json.Unmarshal(data, &out.Body); err != nil {
			logger.Error("failed to decode response", zap.Error(err))
			return nil, errors.Internal("decoding response", err)
		}
	}
	return out, nil
}

func call[T any](logger *zap.Logger, resp *http.Response, err error) (*Response[T], error) {
	if err != nil {
		return nil, err
	}
	return decode[T](logger, resp)
}

func requirePositive(name string, id int) error {
	if id <= 0 {
		return errors.InvalidInput(fmt.Sprintf("%s must be positive, got %d", name, id), nil)
	}
	return nil
}
