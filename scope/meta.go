/*
 * MIT License
 *
 * Copyright (c) 2025 Vesper Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package scope

import (
	"strings"

	"github.com/google/uuid"
)

// Meta is the immutable static identity of an actor: the group it belongs
// to, its optional key within the group, and a unique instance id.
//
// One Meta instance is created per actor and shared by reference among all
// scopes belonging to that actor; it never changes after creation.
type Meta struct {
	group      string
	key        string
	instanceID uuid.UUID
}

// NewMeta creates the identity metadata for an actor of the given group.
// The key distinguishes actors within one group and may be empty for
// singleton groups. A fresh instance id is generated.
func NewMeta(group, key string) *Meta {
	return &Meta{
		group:      group,
		key:        key,
		instanceID: uuid.New(),
	}
}

// Group returns the actor group name.
func (m *Meta) Group() string {
	return m.group
}

// Key returns the actor key within the group, or "" for singleton groups.
func (m *Meta) Key() string {
	return m.key
}

// InstanceID returns the unique id of this actor instance.
func (m *Meta) InstanceID() uuid.UUID {
	return m.instanceID
}

// String renders the identity as "group" or "group/key".
func (m *Meta) String() string {
	if m.key == "" {
		return m.group
	}

	var builder strings.Builder
	builder.Grow(len(m.group) + 1 + len(m.key))
	_, _ = builder.WriteString(m.group)
	_ = builder.WriteByte('/')
	_, _ = builder.WriteString(m.key)
	return builder.String()
}
