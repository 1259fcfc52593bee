package common

import (
	"math/rand"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

var snowflakeNode *snowflake.Node

func init() {
	rand.Seed(time.Now().UnixNano())
	var err error
	snowflakeNode, err = snowflake.NewNode(rand.Int63n(1024))
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a cluster-unique int64 identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns a cluster-unique identifier in string form.
func UUID() string {
	return snowflakeNode.Generate().String()
}

// MaskCardNumber keeps only the last four digits of a card number,
// replacing the rest with asterisks. Whitespace is stripped first.
func MaskCardNumber(card string) string {
	card = strings.ReplaceAll(card, " ", "")
	if len(card) <= 4 {
		return card
	}
	return strings.Repeat("*", len(card)-4) + card[len(card)-4:]
}
