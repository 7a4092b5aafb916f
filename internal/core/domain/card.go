package domain

// BoltCardKeys is the cryptographic material returned once at pairing time.
// This layer holds no copy after the response is sent; writing the keys to the
// NFC card is the caller's responsibility.
type BoltCardKeys struct {
	CardName        string
	K0              string
	K1              string
	K2              string
	K3              string
	K4              string
	LnurlwBase      string
	ProtocolName    string
	ProtocolVersion string
}
