package xjsonnet

import (
	"fmt"

	jsonnet "github.com/google/go-jsonnet"
	"github.com/google/go-jsonnet/ast"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

func NativeFunctionEnv(envMap map[string]string) *jsonnet.NativeFunction {
	return &jsonnet.NativeFunction{
		Name:   "env",
		Params: ast.Identifiers{"key"},
		Func: func(arguments []interface{}) (interface{}, error) {
			key := arguments[0].(string)
			if value, hasKey := envMap[key]; hasKey {
				return value, nil
			}
			return "", nil
		},
	}
}

func NativeFunctionEnvOr(envMap map[string]string) *jsonnet.NativeFunction {
	return &jsonnet.NativeFunction{
		Name:   "envOr",
		Params: ast.Identifiers{"key", "defaultValue"},
		Func: func(arguments []interface{}) (interface{}, error) {
			key := arguments[0].(string)
			if value, hasKey := envMap[key]; hasKey {
				return value, nil
			}
			if len(arguments) > 1 {
				return arguments[1].(string), nil
			}
			return "", nil
		},
	}
}

func NativeFunctionEnviron(envMap map[string]string) *jsonnet.NativeFunction {
	return &jsonnet.NativeFunction{
		Name:   "environ",
		Params: ast.Identifiers{},
		Func: func(arguments []interface{}) (interface{}, error) {
			envMapI := make(map[string]interface{}, len(envMap))
			for k, v := range envMap {
				envMapI[k] = v
			}
			return envMapI, nil
		},
	}
}

func NativeFunctionParseBool() *jsonnet.NativeFunction {
	return &jsonnet.NativeFunction{
		Name:   "parseBool",
		Params: ast.Identifiers{"x"},
		Func: func(x []interface{}) (interface{}, error) {
			s := x[0].(string)
			if s == "true" || s == "1" {
				return true, nil
			} else if s == "false" || s == "0" || s == "" {
				return false, nil
			}
			return nil, fmt.Errorf("invalid boolean: %v", s)
		},
	}
}

func NativeFunctionParseJson5() *jsonnet.NativeFunction {
	return &jsonnet.NativeFunction{
		Name:   "parseJson5",
		Params: ast.Identifiers{"x"},
		Func: func(x []interface{}) (interface{}, error) {
			str := x[0].(string)

			var decoded interface{}
			if err := json5.Unmarshal([]byte(str), &decoded); err != nil {
				return nil, err
			}
			return decoded, nil
		},
	}
}
