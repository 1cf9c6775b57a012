// Copyright (C) 2025 BigLinux contributors
// This file is part of BigLinux Themes GUI - a theme and desktop layout switcher for BigLinux.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Module: notify_test.go
// Description: Tests for notify

package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/biglinux/biglinux-themes-gui/pkg/logging"
)

type sent struct {
	title, message, icon string
}

func recorder(out *[]sent, err error) SendFunc {
	return func(title, message, icon string) error {
		*out = append(*out, sent{title, message, icon})
		return err
	}
}

func TestNotifyDelivers(t *testing.T) {
	var got []sent
	n := NewWithSender("BigLinux Themes", "preferences-desktop-theme", time.Hour, recorder(&got, nil), logging.Discard())

	assert.True(t, n.Notify("changed"))
	assert.Equal(t, []sent{{"BigLinux Themes", "changed", "preferences-desktop-theme"}}, got)
}

func TestNotifyThrottles(t *testing.T) {
	var got []sent
	n := NewWithSender("t", "", time.Hour, recorder(&got, nil), logging.Discard())

	assert.True(t, n.Notify("first"))
	assert.False(t, n.Notify("second"))
	assert.Len(t, got, 1)
}

func TestNotifyAllowsAfterInterval(t *testing.T) {
	var got []sent
	n := NewWithSender("t", "", 20*time.Millisecond, recorder(&got, nil), logging.Discard())

	assert.True(t, n.Notify("first"))
	time.Sleep(60 * time.Millisecond)
	assert.True(t, n.Notify("second"))
	assert.Len(t, got, 2)
}

func TestNotifySendError(t *testing.T) {
	var got []sent
	n := NewWithSender("t", "", time.Hour, recorder(&got, errors.New("no dbus")), logging.Discard())

	assert.False(t, n.Notify("x"))
	assert.Len(t, got, 1)
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	assert.False(t, n.Notify("x"))
}
