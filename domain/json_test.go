/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonObjectScan(t *testing.T) {
	var obj JsonObject
	require.NoError(t, obj.Scan([]byte(`{"k":"v"}`)))
	assert.Equal(t, "v", obj["k"])

	require.NoError(t, obj.Scan(`{"n":1}`))
	assert.Equal(t, float64(1), obj["n"])
}

func TestJsonObjectScanNil(t *testing.T) {
	var obj JsonObject
	require.NoError(t, obj.Scan(nil))
	assert.NotNil(t, obj)
	assert.Empty(t, obj)
}

func TestJsonObjectValue(t *testing.T) {
	v, err := JsonObject{"k": "v"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"v"}`, string(v.([]byte)))

	v, err = JsonObject(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestJsonArrayRoundTrip(t *testing.T) {
	arr := JsonArray{{"k": "v"}}
	v, err := arr.Value()
	require.NoError(t, err)

	var scanned JsonArray
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, arr, scanned)
}

func TestJsonScanUnsupportedType(t *testing.T) {
	var obj JsonObject
	assert.Error(t, obj.Scan(42))
}
