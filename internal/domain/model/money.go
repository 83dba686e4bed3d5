package model

import "github.com/shopspring/decimal"

// 価格はJSONでは数値で返す（"10" ではなく 10）
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
