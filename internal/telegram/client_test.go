package telegram

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeBotAPI answers getMe and records sendMessage texts.
type fakeBotAPI struct {
	mu       sync.Mutex
	texts    []string
	chatIDs  []string
	failSend bool
}

func (f *fakeBotAPI) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"surfbot","username":"surfbot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		if f.failSend {
			w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
			return
		}
		r.ParseForm()
		f.mu.Lock()
		f.texts = append(f.texts, r.PostForm.Get("text"))
		f.chatIDs = append(f.chatIDs, r.PostForm.Get("chat_id"))
		f.mu.Unlock()
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":123,"type":"private"},"text":"ok"}}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, fake *fakeBotAPI) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(server.Close)

	client, err := NewClientWithEndpoint("token", "123", server.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf("NewClientWithEndpoint() error = %v", err)
	}
	return client
}

func TestSend(t *testing.T) {
	fake := &fakeBotAPI{}
	client := newTestClient(t, fake)

	if err := client.Send("*🏄 Worthy Surf Blocks This Week:*\nblock"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(fake.texts) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fake.texts))
	}
	if fake.texts[0] != "*🏄 Worthy Surf Blocks This Week:*\nblock" {
		t.Errorf("text = %q", fake.texts[0])
	}
	if fake.chatIDs[0] != "123" {
		t.Errorf("chat_id = %q", fake.chatIDs[0])
	}
}

func TestSendSplitsLongMessages(t *testing.T) {
	fake := &fakeBotAPI{}
	client := newTestClient(t, fake)

	block := strings.Repeat("a", 3000)
	if err := client.Send(block + separator + block); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(fake.texts) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(fake.texts))
	}
	for i, text := range fake.texts {
		if text != block {
			t.Errorf("message %d was not split on the block boundary", i)
		}
	}
}

func TestSendFailure(t *testing.T) {
	fake := &fakeBotAPI{failSend: true}
	client := newTestClient(t, fake)

	if err := client.Send("hi"); err == nil {
		t.Fatal("expected error from failed send")
	}
}

func TestNewClientInvalidChatID(t *testing.T) {
	if _, err := NewClientWithEndpoint("token", "not-a-number", "http://127.0.0.1:0/bot%s/%s"); err == nil {
		t.Fatal("expected invalid chat ID error")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"fits", "a\n\nb", 10, []string{"a\n\nb"}},
		{"packs parts", "aaa\n\nbbb\n\nccc", 8, []string{"aaa\n\nbbb", "ccc"}},
		{"one per chunk", "aaaa\n\nbbbb", 5, []string{"aaaa", "bbbb"}},
		{"oversized part", "aaaaaaa\n\nb", 3, []string{"aaa", "aaa", "a", "b"}},
		{"emoji counts double", "🏄🏄🏄", 4, []string{"🏄🏄", "🏄"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := split(tt.text, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("split() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
				if textLen(got[i]) > tt.limit {
					t.Errorf("chunk %d exceeds limit", i)
				}
			}
		})
	}
}
