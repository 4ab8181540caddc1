// Copyright The Aion Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package aerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/aerr"
)

func TestNewFormatsMessage(t *testing.T) {
	err := aerr.New("unknown family %q", "cyclone9")
	assert.EqualError(t, err, `unknown family "cyclone9"`)
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := aerr.Wrap(cause, "writing cache artifact")

	assert.EqualError(t, err, "writing cache artifact: disk full")
	assert.ErrorIs(t, err, cause)
}
