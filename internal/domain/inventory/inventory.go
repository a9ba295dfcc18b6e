// Package inventory implements the ordered multiset of catalog item ids an
// account owns. Duplicates represent quantity for consumables. The storage
// encoding is a comma-joined bracketed string: "[1,2,2]", empty "[]".
package inventory

import (
	"strconv"
	"strings"
)

type Inventory struct {
	items []int
}

func New(ids ...int) Inventory {
	inv := Inventory{}
	for _, id := range ids {
		inv.Add(id)
	}
	return inv
}

// Parse decodes the bracket-string form. Invalid or non-positive entries are
// skipped rather than failing the whole inventory, matching how the store
// may have accumulated junk over time.
func Parse(s string) Inventory {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return Inventory{}
	}

	inv := Inventory{}
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id <= 0 {
			continue
		}
		inv.items = append(inv.items, id)
	}
	return inv
}

func (inv Inventory) Encode() string {
	if len(inv.items) == 0 {
		return "[]"
	}
	parts := make([]string, len(inv.items))
	for i, id := range inv.items {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Add appends one instance of id. Non-positive ids are ignored.
func (inv *Inventory) Add(id int) {
	if id <= 0 {
		return
	}
	inv.items = append(inv.items, id)
}

// AddUnique appends id only when not already present, for set-semantics
// inventories such as cosmetics.
func (inv *Inventory) AddUnique(id int) {
	if inv.Contains(id) {
		return
	}
	inv.Add(id)
}

// Remove drops the first occurrence of id, reporting whether one existed.
func (inv *Inventory) Remove(id int) bool {
	for i, have := range inv.items {
		if have == id {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

func (inv Inventory) Contains(id int) bool {
	return inv.Count(id) > 0
}

func (inv Inventory) Count(id int) int {
	n := 0
	for _, have := range inv.items {
		if have == id {
			n++
		}
	}
	return n
}

func (inv Inventory) Len() int {
	return len(inv.items)
}

// IDs returns a copy of the owned ids in insertion order.
func (inv Inventory) IDs() []int {
	out := make([]int, len(inv.items))
	copy(out, inv.items)
	return out
}
