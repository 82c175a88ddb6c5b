package xjsonnet

import (
	"fmt"
	"io/ioutil"
	"os"

	jsonnet "github.com/google/go-jsonnet"

	"github.com/slnclean/slnclean/tools"
)

func Render(src string) (string, error) {
	envMap := tools.EnvToMap(os.Environ())
	return RenderEnv(src, envMap)
}

func RenderEnv(src string, envMap map[string]string) (string, error) {
	vm := jsonnet.MakeVM()

	cwd, _ := os.Getwd()
	vm.Importer(&jsonnet.FileImporter{
		JPaths: []string{cwd},
	})

	vm.NativeFunction(NativeFunctionParseJson5())
	vm.NativeFunction(NativeFunctionParseBool())
	vm.NativeFunction(NativeFunctionEnv(envMap))
	vm.NativeFunction(NativeFunctionEnvOr(envMap))
	vm.NativeFunction(NativeFunctionEnviron(envMap))

	bytes, err := ioutil.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading input file %s: %w", src, err)
	}

	return vm.EvaluateSnippet(src, string(bytes))
}

func RenderToFile(src string, target string) error {
	output, err := Render(src)
	if err != nil {
		return err
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(output); err != nil {
		return err
	}
	return f.Sync()
}
