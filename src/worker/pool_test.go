package worker

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSubmitRunsJob(t *testing.T) {
	p := New(1)
	defer p.Close()

	done := make(chan string, 1)
	ok := p.Submit("/tmp/out", "TC-01", func(dir, code string) (string, error) {
		return dir + "/" + code + ".png", nil
	}, func(path string, err error) {
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		done <- path
	})
	if !ok {
		t.Fatal("Submit returned false on empty queue")
	}

	select {
	case path := <-done:
		if path != "/tmp/out/TC-01.png" {
			t.Errorf("Unexpected path %q", path)
		}
	case <-time.After(time.Second):
		t.Fatal("Callback was not invoked")
	}
}

func TestSubmitBackPressure(t *testing.T) {
	p := New(1)
	defer p.Close()

	var release sync.WaitGroup
	release.Add(1)
	blocked := make(chan struct{}, 2)

	slow := func(dir, code string) (string, error) {
		blocked <- struct{}{}
		release.Wait()
		return "", errors.New("cancelled")
	}
	noop := func(string, error) {}

	if !p.Submit("d", "a", slow, noop) {
		t.Fatal("First submit should be accepted")
	}
	<-blocked

	// Worker busy; second job occupies the single queue slot.
	if !p.Submit("d", "b", slow, noop) {
		t.Fatal("Second submit should occupy the queue slot")
	}
	// Third job has nowhere to go.
	if p.Submit("d", "c", slow, noop) {
		t.Error("Third submit should be rejected")
	}

	release.Done()
}
