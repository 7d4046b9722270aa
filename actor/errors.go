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

package actor

import "errors"

var (
	// ErrDead is returned when sending to an actor that has been stopped.
	ErrDead = errors.New("actor is not alive")
	// ErrRequestTimeout is returned when a request receives no reply in time.
	ErrRequestTimeout = errors.New("request timed out")
	// ErrNotRequest is returned when responding to a non-request envelope.
	ErrNotRequest = errors.New("message is not a request")
	// ErrAlreadyResponded is returned when a request is responded to twice.
	ErrAlreadyResponded = errors.New("request has already been responded to")
	// ErrActorAlreadyExists is returned when spawning an actor whose
	// group/key pair is already taken.
	ErrActorAlreadyExists = errors.New("actor already exists")
	// ErrSystemStopped is returned when spawning on a stopped system.
	ErrSystemStopped = errors.New("actor system has been stopped")
)
