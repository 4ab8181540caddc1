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
package arena

import (
	"bytes"
	"encoding/gob"
)

// GobEncode implements gob.GobEncoder. Arena's only field is unexported, so
// gob needs an explicit encoding; this just delegates to gob itself for the
// underlying slice.
func (a Arena[T]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	//
	if err := gob.NewEncoder(&buf).Encode(a.items); err != nil {
		return nil, err
	}
	//
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (a *Arena[T]) GobDecode(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(&a.items)
}
