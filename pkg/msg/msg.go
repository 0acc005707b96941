package msg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// init loads messages from YAML
func init() {
	var value, ok = os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	Init(value)
}

func Init(filepath string) {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	if messages == nil {
		messages = make(map[string]string)
	}
	parseMessageMap("", viper.AllSettings(), messages)
}

// parseMessageMap reads the YAML tree recursively, flattening keys with dots
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message registered under key, replacing {0}, {1}, ...
// placeholders with the given arguments. Struct arguments are JSON encoded.
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		msg = strings.ReplaceAll(msg, placeholder, argToString(arg))
	}

	return msg
}

// argToString renders primitives with fmt and everything else as JSON.
func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}

	switch reflect.TypeOf(arg).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return fmt.Sprintf("%v", arg)
	default:
		jsonBytes, err := json.Marshal(arg)
		if err != nil {
			return fmt.Sprintf("%v", arg)
		}
		return string(jsonBytes)
	}
}
