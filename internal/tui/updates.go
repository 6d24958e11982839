package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

const updateBuffer = 32

// subscribeAll bridges hook notifications into ch. Sends never block: a
// dropped name is harmless because every render reads the latest state.
func subscribeAll(bindings []binding, ch chan<- string) (unsubscribe func()) {
	unsubs := make([]func(), 0, len(bindings))
	for _, b := range bindings {
		name := b.name
		unsubs = append(unsubs, b.subscribe(func() {
			select {
			case ch <- name:
			default:
			}
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// listenUpdatesCmd waits for the next hook notification. Re-issue it after
// every ResourceUpdatedMsg to keep listening.
func listenUpdatesCmd(ctx context.Context, ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		select {
		case name, ok := <-ch:
			if !ok {
				return UpdatesClosedMsg{}
			}
			return ResourceUpdatedMsg{Name: name}
		case <-ctx.Done():
			return UpdatesClosedMsg{}
		}
	}
}
