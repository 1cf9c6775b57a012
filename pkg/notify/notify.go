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

// Module: notify.go
// Description: Mirrors in-window toasts to desktop notifications

package notify

import (
	"time"

	"charm.land/log/v2"
	"github.com/gen2brain/beeep"
	"golang.org/x/time/rate"
)

// SendFunc delivers one desktop notification
type SendFunc func(title, message, icon string) error

// beeepSend is the default SendFunc
func beeepSend(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

// Notifier sends at most one notification per interval; extra messages
// inside the interval are dropped since the toast already shows them.
type Notifier struct {
	title   string
	icon    string
	limiter *rate.Limiter
	send    SendFunc
	logger  *log.Logger
}

// New returns a notifier that allows one notification every interval
func New(title, icon string, interval time.Duration, logger *log.Logger) *Notifier {
	beeep.AppName = title
	return NewWithSender(title, icon, interval, beeepSend, logger)
}

// NewWithSender is New with a custom delivery function
func NewWithSender(title, icon string, interval time.Duration, send SendFunc, logger *log.Logger) *Notifier {
	return &Notifier{
		title:   title,
		icon:    icon,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		send:    send,
		logger:  logger,
	}
}

// Notify sends message and reports whether it was delivered
func (n *Notifier) Notify(message string) bool {
	if n == nil {
		return false
	}
	if !n.limiter.Allow() {
		n.logger.Debug("Notification throttled", "message", message)
		return false
	}
	if err := n.send(n.title, message, n.icon); err != nil {
		n.logger.Warn("Desktop notification failed", "err", err)
		return false
	}
	return true
}
