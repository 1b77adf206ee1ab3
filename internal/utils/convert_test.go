// Copyright 2020 ConsenSys AG
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"math/big"
	"testing"
)

func TestFromInterfaceValidFormats(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("valid input should not panic")
		}
	}()

	_ = FromInterface(12)
	_ = FromInterface(int64(-3))
	_ = FromInterface(uint8(255))
	_ = FromInterface(big.NewInt(-42))
	_ = FromInterface(*big.NewInt(42))
	_ = FromInterface("8000")
	_ = FromInterface("0x2a")
	_ = FromInterface([]byte{0x01, 0x00})

}

func TestFromInterfaceInvalidFormats(t *testing.T) {
	for _, input := range []interface{}{"not a number", 1.5, nil} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("expected panic on %v", input)
				}
			}()
			_ = FromInterface(input)
		}()
	}
}

func TestFromInterfaceValues(t *testing.T) {
	v := FromInterface("0b101")
	if v.Int64() != 5 {
		t.Fatal("unexpected value from binary string")
	}

	v = FromInterface(-42)
	if v.Int64() != -42 {
		t.Fatal("unexpected value from int")
	}

	// conversions copy the input
	in := big.NewInt(7)
	v = FromInterface(in)
	in.SetInt64(8)
	if v.Int64() != 7 {
		t.Fatal("conversion must not alias the input")
	}
}
