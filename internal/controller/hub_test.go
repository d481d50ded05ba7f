package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func TestHubBroadcastsRefreshEvent(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	client := &Client{
		Send: make(chan []byte, 10),
	}
	hub.register <- client

	hub.BookingsChanged()

	select {
	case got := <-client.Send:
		var event refreshEvent
		if err := json.Unmarshal(got, &event); err != nil {
			t.Fatalf("invalid broadcast payload: %v", err)
		}
		if event.Event != "bookings_changed" {
			t.Fatalf("expected bookings_changed, got %q", event.Event)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast")
	}

	hub.unregister <- client
	hub.Stop()
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	defer hub.Stop()

	// Буфер на одно сообщение: второй broadcast отключает клиента
	client := &Client{
		Send: make(chan []byte, 1),
	}
	hub.register <- client

	hub.BookingsChanged()
	hub.BookingsChanged()

	deadline := time.After(1 * time.Second)
	for {
		select {
		case _, ok := <-client.Send:
			if !ok {
				return // канал закрыт, клиент отключён
			}
		case <-deadline:
			t.Fatal("slow client was not dropped")
		}
	}
}

func TestHandleWSReturnsAfterStop(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.HandleWS(w, r, nil)
		close(done)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// После остановки хаба обработчик обязан завершиться,
	// а не повиснуть на отписке клиента
	hub.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after hub stop")
	}
}
