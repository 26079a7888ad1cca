package messenger

import (
	"os"
	"testing"
)

func TestQueueNameIncludesNetworkAndIndex(t *testing.T) {
	os.Setenv("NETWORK", "testnet")
	os.Setenv("INDEX_NAME", "marketplace")
	defer os.Unsetenv("NETWORK")
	defer os.Unsetenv("INDEX_NAME")

	if got := ActionPersist.queue(); got != "testnet_marketplace_action_persist" {
		t.Errorf("queue = %s, want testnet_marketplace_action_persist", got)
	}
}

func TestConfiguredQueueUrlOverridesLookup(t *testing.T) {
	os.Setenv("AWS_QUEUE_URL", "http://localhost:4566/000000000000/actions")
	defer os.Unsetenv("AWS_QUEUE_URL")

	// No sqs client needed: the override short-circuits the name lookup.
	m := Messenger{}

	url, err := m.getQueueUrl(ActionPersist)
	if err != nil {
		t.Fatalf("get queue url failed: %v", err)
	}

	if *url != "http://localhost:4566/000000000000/actions" {
		t.Errorf("url = %s, want the configured override", *url)
	}
}
