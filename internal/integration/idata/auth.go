package idata

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// authorizer signs requests to the IDATA API. The signature is an HMAC over
// the query parameters, sorted by key, joined as key=v1,v2 pairs with '&'.
type authorizer struct {
	apiKey    string
	secretKey string
}

// AuthorizationHeader builds the IDATA authorization header value for the
// given query parameters.
func (a authorizer) AuthorizationHeader(query url.Values) string {
	return "IDATA " + a.apiKey + ":" + a.sign(messageFromQuery(query))
}

func (a authorizer) sign(message string) string {
	mac := hmac.New(sha1.New, []byte(a.secretKey))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func messageFromQuery(query url.Values) string {
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+strings.Join(query[key], ","))
	}
	return strings.Join(pairs, "&")
}
