/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package envelope

import (
	"bytes"
	"encoding/base64"

	"github.com/kmyth-go/ski/pkg/cipher"
	"github.com/kmyth-go/ski/pkg/skierr"
	"github.com/kmyth-go/ski/pkg/tpmcodec"
)

// Parse scans input strictly in the seven-section order of spec.md §6,
// base64-decodes the six binary sections, resolves the cipher-suite name
// against the registry, and hands the five TPM blobs to codec for
// unmarshalling. Any single-step failure returns one MalformedEnvelope (or
// UnknownCipher) error; no half-constructed Envelope is ever returned.
func Parse(input []byte, codec tpmcodec.Codec) (Envelope, error) {
	if codec == nil {
		codec = tpmcodec.Default
	}

	c := cursor(input)

	pcrRaw, c, err := c.getBlock(DelimPcrSelection, DelimSkPublic)
	if err != nil {
		return Envelope{}, err
	}
	skPubRaw, c, err := c.getBlock(DelimSkPublic, DelimSkPrivate)
	if err != nil {
		return Envelope{}, err
	}
	skPrivRaw, c, err := c.getBlock(DelimSkPrivate, DelimCipherSuite)
	if err != nil {
		return Envelope{}, err
	}
	cipherRaw, c, err := c.getBlock(DelimCipherSuite, DelimWkPublic)
	if err != nil {
		return Envelope{}, err
	}
	wkPubRaw, c, err := c.getBlock(DelimWkPublic, DelimWkPrivate)
	if err != nil {
		return Envelope{}, err
	}
	wkPrivRaw, c, err := c.getBlock(DelimWkPrivate, DelimEncData)
	if err != nil {
		return Envelope{}, err
	}
	encRaw, c, err := c.getBlock(DelimEncData, DelimFileEnd)
	if err != nil {
		return Envelope{}, err
	}

	if !bytes.Equal([]byte(c), []byte(DelimFileEnd)) {
		return Envelope{}, skierr.New(skierr.MalformedEnvelope, "envelope.parse")
	}

	cipherName, err := parseCipherNameLine(cipherRaw)
	if err != nil {
		return Envelope{}, err
	}
	if _, err := cipher.Lookup(cipherName); err != nil {
		return Envelope{}, err
	}

	pcrBytes, err := decodeBase64Section(pcrRaw)
	if err != nil {
		return Envelope{}, err
	}
	skPubBytes, err := decodeBase64Section(skPubRaw)
	if err != nil {
		return Envelope{}, err
	}
	skPrivBytes, err := decodeBase64Section(skPrivRaw)
	if err != nil {
		return Envelope{}, err
	}
	wkPubBytes, err := decodeBase64Section(wkPubRaw)
	if err != nil {
		return Envelope{}, err
	}
	wkPrivBytes, err := decodeBase64Section(wkPrivRaw)
	if err != nil {
		return Envelope{}, err
	}
	encPayload, err := decodeBase64Section(encRaw)
	if err != nil {
		return Envelope{}, err
	}

	pcrList, err := codec.UnpackPcrSelection(pcrBytes)
	if err != nil {
		return Envelope{}, err
	}
	skPub, err := codec.UnpackPublic(skPubBytes)
	if err != nil {
		return Envelope{}, err
	}
	skPriv, err := codec.UnpackPrivate(skPrivBytes)
	if err != nil {
		return Envelope{}, err
	}
	wkPub, err := codec.UnpackPublic(wkPubBytes)
	if err != nil {
		return Envelope{}, err
	}
	wkPriv, err := codec.UnpackPrivate(wkPrivBytes)
	if err != nil {
		return Envelope{}, err
	}

	if len(encPayload) == 0 {
		return Envelope{}, skierr.New(skierr.MalformedEnvelope, "envelope.parse")
	}

	return Envelope{
		PcrList:    pcrList,
		SkPub:      skPub,
		SkPriv:     skPriv,
		CipherName: cipherName,
		WkPub:      wkPub,
		WkPriv:     wkPriv,
		EncPayload: encPayload,
	}, nil
}

func parseCipherNameLine(raw []byte) (string, error) {
	if len(raw) == 0 || raw[len(raw)-1] != '\n' {
		return "", skierr.New(skierr.MalformedEnvelope, "envelope.parse_cipher_name")
	}
	line := raw[:len(raw)-1]
	if len(line) == 0 || bytes.ContainsRune(line, '\n') {
		return "", skierr.New(skierr.MalformedEnvelope, "envelope.parse_cipher_name")
	}
	return string(line), nil
}

func decodeBase64Section(raw []byte) ([]byte, error) {
	stripped := bytes.ReplaceAll(raw, []byte("\n"), nil)
	decoded, err := base64.StdEncoding.DecodeString(string(stripped))
	if err != nil {
		return nil, skierr.Wrap(skierr.MalformedEnvelope, "envelope.base64_decode", err)
	}
	if len(decoded) == 0 {
		return nil, skierr.New(skierr.MalformedEnvelope, "envelope.base64_decode")
	}
	return decoded, nil
}
