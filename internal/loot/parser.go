// Package loot parses drop notification text into structured events.
package loot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// Notification text markers produced by the in-game loot notifier.
const (
	lootedMarker = " has looted:"
	itemMarker   = " x ["
	sourceMarker = "From: ["
)

// Parse converts a loot notification into a DropEvent. The text looks
// like:
//
//	PlayerName has looted:
//
//	2 x [Iron ore](https://...) (120gp)
//	1 x [Dragon bones](https://...)
//	From: [Green dragon](https://...)
//
// Item order is preserved. A malformed quantity becomes 0 but the item
// is still recorded so nothing silently disappears from a drop line.
func Parse(text string) (*domain.DropEvent, error) {
	username, rest, found := strings.Cut(text, lootedMarker)
	if !found {
		return nil, domain.ErrNoUser
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrNoUser
	}
	if len(username) > domain.MaxUsernameLength {
		return nil, fmt.Errorf("%w: %q is %d characters", domain.ErrUsernameTooLong, username, len(username))
	}

	event := &domain.DropEvent{Username: username}

	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(line)

		if after, ok := strings.CutPrefix(line, sourceMarker); ok {
			if name, _, ok := strings.Cut(after, "]"); ok {
				event.Source = strings.TrimSpace(name)
			}
			continue
		}

		qtyPart, itemPart, ok := strings.Cut(line, itemMarker)
		if !ok {
			continue
		}

		name, _, ok := strings.Cut(itemPart, "]")
		if !ok {
			name = itemPart
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		quantity, err := strconv.ParseInt(strings.TrimSpace(qtyPart), 10, 64)
		if err != nil {
			quantity = 0
		}

		event.Items = append(event.Items, domain.ItemQuantity{
			Name:     name,
			Quantity: quantity,
		})
	}

	if len(event.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	return event, nil
}
