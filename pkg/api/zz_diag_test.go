package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/codecoder-dev/codecoder/pkg/events"
)

func TestDiagWS(t *testing.T) {
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(old) })

	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)

	_, resp := env.rpc(t, "task.submit", map[string]any{"agent_id": "echo", "prompt": "stream me"})
	taskID, _ := resultMap(t, resp)["id"].(string)
	if taskID == "" {
		t.Fatal("no task id")
	}

	ctx, cancelCtx := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelCtx()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?task_id=" + taskID + "&since_seq=0"
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPHeader: http.Header{"X-API-Key": []string{testAPIKey}},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer conn.CloseNow()

	if err := env.sup.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(env.sup.Stop)

	for {
		var ev events.Event
		if err := wsjson.Read(ctx, conn, &ev); err != nil {
			t.Logf("read ended: %v", err)
			break
		}
		t.Logf("event seq=%d type=%s", ev.Seq, ev.Type)
	}
}
