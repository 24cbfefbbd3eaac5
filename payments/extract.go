// payments/extract.go
package payments

import (
	"math"
	"strconv"
	"strings"

	"confetti-orders/models"
)

// activityPaths are the known nestings of the transfer list inside a
// notification payload, probed in priority order. The first non-empty
// list wins.
var activityPaths = [][]string{
	{"event", "activity"},
	{"data", "activity"},
	{"activity"},
}

// resolver pulls one logical field out of a raw transfer record.
// Resolvers for the same field are tried in order; the first one that
// finds its key wins.
type resolver func(raw map[string]interface{}) (interface{}, bool)

func field(name string) resolver {
	return func(raw map[string]interface{}) (interface{}, bool) {
		v, ok := raw[name]
		return v, ok
	}
}

func nested(outer, inner string) resolver {
	return func(raw map[string]interface{}) (interface{}, bool) {
		obj, ok := raw[outer].(map[string]interface{})
		if !ok {
			return nil, false
		}
		v, ok := obj[inner]
		return v, ok
	}
}

// Known alias names per logical field, as reported by different
// notification providers.
var (
	toResolvers     = []resolver{field("to"), field("toAddress"), field("receiver")}
	fromResolvers   = []resolver{field("from"), field("fromAddress"), field("sender")}
	tokenResolvers  = []resolver{nested("rawContract", "address"), field("contractAddress"), field("assetContractAddress")}
	txHashResolvers = []resolver{field("hash"), field("transactionHash"), field("txHash")}
	amountResolvers = []resolver{field("value"), field("amount")}
)

// Extract normalizes an arbitrary notification payload into candidate
// transfers. Malformed or unrecognized payloads degrade to an empty
// slice; extraction never fails.
func Extract(payload map[string]interface{}) []models.Transfer {
	raw := activityList(payload)
	transfers := make([]models.Transfer, 0, len(raw))
	for _, entry := range raw {
		rec, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		transfers = append(transfers, models.Transfer{
			To:     strings.ToLower(resolveString(rec, toResolvers)),
			From:   strings.ToLower(resolveString(rec, fromResolvers)),
			Token:  strings.ToLower(resolveString(rec, tokenResolvers)),
			Amount: resolveAmount(rec),
			TxHash: resolveString(rec, txHashResolvers),
		})
	}
	return transfers
}

func activityList(payload map[string]interface{}) []interface{} {
	for _, path := range activityPaths {
		var node interface{} = payload
		for _, key := range path {
			obj, ok := node.(map[string]interface{})
			if !ok {
				node = nil
				break
			}
			node = obj[key]
		}
		if list, ok := node.([]interface{}); ok && len(list) > 0 {
			return list
		}
	}
	return nil
}

// resolveString returns the first alias that yields a non-empty string,
// so a null or empty value falls through to the next alias.
func resolveString(raw map[string]interface{}, resolvers []resolver) string {
	for _, r := range resolvers {
		v, ok := r(raw)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// resolveAmount skips aliases whose value is null, so a null "value"
// falls through to "amount".
func resolveAmount(raw map[string]interface{}) float64 {
	for _, r := range amountResolvers {
		if v, ok := r(raw); ok && v != nil {
			return asNumber(v)
		}
	}
	return math.NaN()
}

// asNumber coerces a decoded JSON value to a float64. Numbers pass
// through, strings are parsed as decimals, anything else is NaN.
func asNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
