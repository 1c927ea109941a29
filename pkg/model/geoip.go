package model

// GeoIP is the geolocation sub-record attached to a Client or Whowas entry.
type GeoIP struct {
	CountryCode string `json:"country_code"`
	Asn         int    `json:"asn"`
	Asname      string `json:"asname"`
}

func decodeGeoIP(v any) GeoIP {
	m := asMap(v)
	return GeoIP{
		CountryCode: asString(renamed(m, "country_code", "country-code")),
		Asn:         asInt(field(m, "asn")),
		Asname:      asString(field(m, "asname")),
	}
}

// TLSInfo is the TLS sub-record attached to a Client entry: cipher suite,
// protocol version and the certificate fingerprint the original Python
// source exposes alongside them.
type TLSInfo struct {
	CipherSuite  string `json:"cipher"`
	TLSVersion   string `json:"tls_version"`
	Certfp       string `json:"certfp"`
}

func decodeTLSInfo(v any) TLSInfo {
	m := asMap(v)
	return TLSInfo{
		CipherSuite: asString(field(m, "cipher")),
		TLSVersion:  asString(field(m, "tls_version")),
		Certfp:      asString(field(m, "certfp")),
	}
}
