// Package runner executes source code on a Piston-compatible execution
// service.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Errors for runner operations.
var (
	// ErrEmptyCode is returned when the submitted code is blank.
	ErrEmptyCode = errors.New("please enter some code")

	// ErrUnsupportedLanguage is returned when the language has no runtime.
	ErrUnsupportedLanguage = errors.New("unsupported language selected")

	// ErrRequestFailed is returned when the service cannot be reached or
	// answers with something other than an execution result.
	ErrRequestFailed = errors.New("error executing code")
)

// DefaultEndpoint is the public Piston execute endpoint.
const DefaultEndpoint = "https://emkc.org/api/v2/piston/execute"

// DefaultTimeout bounds a single execution request.
const DefaultTimeout = 30 * time.Second

// fallbackError is reported when a failed run produced no output at all.
const fallbackError = "Execution error"

// Request is the input of one execution.
type Request struct {
	Language string
	Content  string
}

// Result is the outcome of a completed execution. A program that ran but
// exited non-zero is a Result with Success false, not an error.
type Result struct {
	Success  bool
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Logger is the interface for logging.
//
// Logging must be best-effort and must not panic.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

// Config configures a Client.
type Config struct {
	// Endpoint is the execute URL. Default: DefaultEndpoint.
	Endpoint string

	// Timeout bounds each request. Default: DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client

	// Logger is an optional logger for request events.
	Logger Logger
}

// Client talks to the execution service.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	logger   Logger
}

func New(cfg Config) *Client {
	c := &Client{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		http:     cfg.HTTPClient,
		logger:   cfg.Logger,
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	return c
}

// Endpoint returns the configured execute URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Run executes req.Content with the runtime registered for req.Language.
func (c *Client) Run(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Content) == "" {
		return Result{}, ErrEmptyCode
	}
	lang, ok := Lookup(req.Language)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Language)
	}

	body, err := encodeRequest(lang, req.Content)
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	c.debug("execute", "language", lang.Runtime, "version", lang.Version, "bytes", len(body))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.warn("execute failed", "err", err)
		return Result{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read response: %w", ErrRequestFailed, err)
	}

	res, err := decodeResponse(data)
	if err != nil {
		c.warn("bad response", "status", resp.StatusCode, "err", err)
		return Result{}, fmt.Errorf("%w: status %d: %w", ErrRequestFailed, resp.StatusCode, err)
	}
	res.Duration = time.Since(start)
	c.debug("executed", "success", res.Success, "exit", res.ExitCode, "duration", res.Duration)
	return res, nil
}

func encodeRequest(lang Language, content string) ([]byte, error) {
	body := []byte(`{}`)
	var err error
	if body, err = sjson.SetBytes(body, "language", lang.Runtime); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "version", lang.Version); err != nil {
		return nil, err
	}
	files := []map[string]string{{"content": content}}
	if body, err = sjson.SetBytes(body, "files", files); err != nil {
		return nil, err
	}
	return body, nil
}

// decodeResponse maps the service's run block onto a Result. A missing or
// non-zero run.code is a failed run; its error text is stderr, then output,
// then a fixed fallback.
func decodeResponse(data []byte) (Result, error) {
	if !gjson.ValidBytes(data) {
		return Result{}, errors.New("invalid JSON")
	}
	run := gjson.GetBytes(data, "run")
	if !run.Exists() {
		if msg := gjson.GetBytes(data, "message"); msg.Exists() {
			return Result{}, errors.New(msg.String())
		}
		return Result{}, errors.New("missing run result")
	}

	code := run.Get("code")
	output := run.Get("output").String()
	if code.Type != gjson.Number || code.Int() != 0 {
		stderr := run.Get("stderr").String()
		if stderr == "" {
			stderr = output
		}
		if stderr == "" {
			stderr = fallbackError
		}
		return Result{Success: false, Stderr: stderr, ExitCode: int(code.Int())}, nil
	}
	return Result{Success: true, Stdout: strings.TrimSpace(output)}, nil
}

func (c *Client) debug(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}

func (c *Client) warn(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, keyvals...)
	}
}
