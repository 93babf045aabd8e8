// MIT License
//
// Copyright (c) 2021 TFG Co
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package operation

import "fmt"

type Status int32

const (
	// Operation was built but Execute was not called yet.
	StatusCreated Status = iota
	// Operation unit of work is running.
	StatusRunning
	// Operation finished with success.
	StatusSucceeded
	// Operation finished with error.
	StatusFailed
)

func (s Status) String() (string, error) {
	switch s {
	case StatusCreated:
		return "created", nil
	case StatusRunning:
		return "running", nil
	case StatusSucceeded:
		return "succeeded", nil
	case StatusFailed:
		return "failed", nil
	}

	return "", fmt.Errorf("status could not be mapped to string: %d", s)
}

// IsFinal returns true when no transition leaves the status.
func (s Status) IsFinal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// CanTransitionTo tells if the operation lifecycle allows moving from s to
// next. The only valid paths are created -> running -> succeeded|failed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusCreated:
		return next == StatusRunning
	case StatusRunning:
		return next == StatusSucceeded || next == StatusFailed
	}

	return false
}
