/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cipher

import (
	"github.com/kmyth-go/ski/pkg/cipher/aesgcm"
	"github.com/kmyth-go/ski/pkg/cipher/aeskw5649"
)

// Canonical suite names, per the grammar in spec.md §6:
// <family>/<mode>/<padding>/<keybits>.
const (
	AESKeyWrap5649Padding128 = "AES/KeyWrap/RFC5649Padding/128"
	AESKeyWrap5649Padding192 = "AES/KeyWrap/RFC5649Padding/192"
	AESKeyWrap5649Padding256 = "AES/KeyWrap/RFC5649Padding/256"

	AESGCMNoPadding128 = "AES/GCM/NoPadding/128"
	AESGCMNoPadding256 = "AES/GCM/NoPadding/256"
)

func init() {
	register(&Suite{
		name:     AESKeyWrap5649Padding128,
		keyBytes: []int{16},
		wrap:     aeskw5649.Wrap,
		unwrap:   aeskw5649.Unwrap,
	})
	register(&Suite{
		name:     AESKeyWrap5649Padding192,
		keyBytes: []int{24},
		wrap:     aeskw5649.Wrap,
		unwrap:   aeskw5649.Unwrap,
	})
	register(&Suite{
		name:     AESKeyWrap5649Padding256,
		keyBytes: []int{32},
		wrap:     aeskw5649.Wrap,
		unwrap:   aeskw5649.Unwrap,
	})

	register(&Suite{
		name:     AESGCMNoPadding128,
		keyBytes: []int{16},
		wrap:     aesgcm.Wrap,
		unwrap:   aesgcm.Unwrap,
	})
	register(&Suite{
		name:     AESGCMNoPadding256,
		keyBytes: []int{32},
		wrap:     aesgcm.Wrap,
		unwrap:   aesgcm.Unwrap,
	})
}
