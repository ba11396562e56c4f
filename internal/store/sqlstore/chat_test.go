package sqlstore

import (
	"fmt"
	"testing"
)

func TestChatHistoryOrderAndLimit(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	userID, _ := testStore.CreateUser("chatter", "pass")

	for i := 1; i <= 12; i++ {
		if err := testStore.AddChatMessage(userID, fmt.Sprintf("message-%d", i), fmt.Sprintf("reply-%d", i)); err != nil {
			t.Fatalf("Failed to add message %d: %v", i, err)
		}
	}

	history, err := testStore.GetChatHistory(userID, 10)
	if err != nil {
		t.Fatalf("GetChatHistory failed: %v", err)
	}
	if len(history) != 10 {
		t.Fatalf("Expected 10 messages, got %d", len(history))
	}

	// Chronological order, newest last.
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.Before(history[i-1].Timestamp) {
			t.Errorf("History out of order at index %d", i)
		}
	}
	if history[0].UserMessage != "message-3" {
		t.Errorf("Expected oldest retained message to be message-3, got %q", history[0].UserMessage)
	}
	if history[9].UserMessage != "message-12" {
		t.Errorf("Expected newest message last, got %q", history[9].UserMessage)
	}
}

func TestChatHistoryFewerThanLimit(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	userID, _ := testStore.CreateUser("chatter", "pass")
	testStore.AddChatMessage(userID, "only one", "reply")

	history, err := testStore.GetChatHistory(userID, 10)
	if err != nil {
		t.Fatalf("GetChatHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("Expected 1 message, got %d", len(history))
	}
}

func TestChatHistoryUnknownUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	history, err := testStore.GetChatHistory(9999, 10)
	if err != nil {
		t.Fatalf("Expected no error for unknown user, got %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(history))
	}
}

func TestChatUnicodeRoundTrip(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	userID, _ := testStore.CreateUser("chatter", "pass")

	message := "我想学好数学 📐 und Französisch"
	reply := "📚 当然可以！"
	if err := testStore.AddChatMessage(userID, message, reply); err != nil {
		t.Fatal(err)
	}

	history, err := testStore.GetChatHistory(userID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if history[0].UserMessage != message {
		t.Errorf("User message mangled: got %q", history[0].UserMessage)
	}
	if history[0].AIResponse != reply {
		t.Errorf("Reply mangled: got %q", history[0].AIResponse)
	}
}
