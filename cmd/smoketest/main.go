// Command smoketest exercises a deployed instance end to end: it checks the
// health endpoint, starts a session, and plays one turn through the JSON API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/logging"
)

func testAPI(client *http.Client, baseURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	var health struct {
		Status string `json:"status"`
	}
	if err := getJSON(ctx, client, baseURL+"/api/healthy", &health); err != nil {
		return errors.Wrap(err, "check health")
	}
	if health.Status != "ok" {
		return errors.New("unexpected health status '" + health.Status + "'")
	}

	var visible struct {
		CaseID string `json:"case_id"`
	}
	if err := getJSON(ctx, client, baseURL+"/api/visible_state", &visible); err != nil {
		return errors.Wrap(err, "fetch visible state")
	}
	if visible.CaseID == "" {
		return errors.New("visible state is missing a case id")
	}

	var applied struct {
		ActionResult struct {
			Summary string `json:"summary"`
		} `json:"action_result"`
	}
	if err := postJSON(ctx, client, baseURL+"/api/apply_action",
		map[string]any{"action_id": "do_nothing"}, &applied); err != nil {
		return errors.Wrap(err, "apply action")
	}
	if applied.ActionResult.Summary == "" {
		return errors.New("turn produced no action summary")
	}
	return nil
}

func getJSON(ctx context.Context, client *http.Client, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	return doJSON(client, req, dst)
}

func postJSON(ctx context.Context, client *http.Client, url string, body any, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, req, dst)
}

func doJSON(client *http.Client, req *http.Request, dst any) error {
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return errors.New(fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, req.URL))
	}
	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decode response body")
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	jar, err := cookiejar.New(nil)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating cookie jar", errors.SlogError(err))
		os.Exit(1)
	}
	client := &http.Client{Jar: jar}
	if err = testAPI(client, url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing API", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
