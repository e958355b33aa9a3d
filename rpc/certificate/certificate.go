// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Get - verify a PEM certificate and key pair and return a TLS
// configuration with the SHA3-256 fingerprint of the leaf certificate
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read certificate and key files then call Get
//
// both names empty means TLS is disabled and a nil configuration is
// returned without error
func Load(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if "" == certificateFile && "" == keyFile {
		log.Warnf("%s: no certificate, serving without TLS", name)
		return nil, fin, nil
	}
	if "" == certificateFile || "" == keyFile {
		log.Errorf("%s: certificate and private key must both be set", name)
		return nil, fin, fault.ErrInvalidFileName
	}

	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s: read certificate: %q  error: %s", name, certificateFile, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s: read private key: %q  error: %s", name, keyFile, err)
		return nil, fin, err
	}

	return Get(log, name, string(certificate), string(key))
}

// fingerprint - compute the fingerprint of a certificate
//
// openssl x509 -outform DER -in ledgerd-local-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
