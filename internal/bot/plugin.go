package bot

import (
	"errors"
	"fmt"
)

// Plugin is the contract a collaborator satisfies to extend the bot.
// Init is invoked exactly once at load time, before the run loop
// starts; it registers listeners through the bot's registration API.
type Plugin interface {
	Init(b *Bot) error
}

// LoadPlugins initializes each plugin in order. A nil plugin or a
// failing Init aborts the load; nothing runs until every plugin has
// loaded cleanly.
func (b *Bot) LoadPlugins(plugins ...Plugin) error {
	for i, p := range plugins {
		if p == nil {
			return fmt.Errorf("plugin %d: %w", i, errNilPlugin)
		}
		if err := p.Init(b); err != nil {
			return fmt.Errorf("plugin %d failed to initialize: %w", i, err)
		}
	}
	return nil
}

var errNilPlugin = errors.New("plugin does not satisfy the plugin contract")
