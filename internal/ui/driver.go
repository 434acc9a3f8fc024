package ui

import (
	"github.com/atomicstack/menuctl/internal/menu"
)

// renderCache is the menu.Driver behind the terminal view. It keeps the
// resolved display fields of every list it has been notified about so a
// redraw only calls Entries.Get for rows that changed.
type renderCache struct {
	rows map[*menu.List]map[int]menu.Entry
}

func newRenderCache() *renderCache {
	return &renderCache{rows: make(map[*menu.List]map[int]menu.Entry)}
}

func (c *renderCache) ListClear(list *menu.List) {
	delete(c.rows, list)
}

func (c *renderCache) ListInsert(list *menu.List, _ string, _ string, idx int) {
	c.forget(list, idx)
}

func (c *renderCache) ListFree(list *menu.List, idx, _ int) {
	c.forget(list, idx)
}

func (c *renderCache) ListSetSelection(*menu.List) {}

func (c *renderCache) ListCache(kind menu.ListKind, _ int) {
	if kind == menu.ListPlain {
		c.invalidate()
	}
}

// entry returns the cached display fields for idx, resolving them through
// entries on a miss.
func (c *renderCache) entry(entries *menu.Entries, idx int) menu.Entry {
	list := entries.SelectionBuffer()
	rows, ok := c.rows[list]
	if !ok {
		rows = make(map[int]menu.Entry)
		c.rows[list] = rows
	}
	if cached, ok := rows[idx]; ok {
		return cached
	}
	resolved := entries.Get(idx)
	rows[idx] = resolved
	return resolved
}

func (c *renderCache) invalidate() {
	for list := range c.rows {
		delete(c.rows, list)
	}
}

func (c *renderCache) forget(list *menu.List, idx int) {
	if rows, ok := c.rows[list]; ok {
		delete(rows, idx)
	}
}
