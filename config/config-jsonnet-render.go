package config

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/slnclean/slnclean/tools"
	"github.com/slnclean/slnclean/xjsonnet"
)

// ConfigJsonnetRender renders <name>.jsonnet to <name>.json in the
// first config dir that carries one, unless a non-jsonnet config
// already exists for that name.
func ConfigJsonnetRender(dirpaths []string, name string) (bool, error) {
	srcFilename := name + ".jsonnet"

	var alreadyExists bool
	var efile string
	exts := []string{"toml", "yaml", "yml", "hcl", "json"}

	for _, dpath := range dirpaths {
		var err error
		dpath, err = filepath.Abs(dpath)
		if err != nil {
			continue
		}
		for _, ext := range exts {
			efile = filepath.Join(dpath, name+"."+ext)
			if ok, _ := tools.FileExists(efile); ok {
				alreadyExists = true
				break
			}
		}
		if alreadyExists {
			break
		}
	}
	if alreadyExists {
		logrus.Debugf(`jsonnet config already exists for "%v" as "%v"`, name, efile)
		return false, nil
	}

	var dirpath string
	var found bool
	for _, dpath := range dirpaths {
		var err error
		dpath, err = filepath.Abs(dpath)
		if err != nil {
			continue
		}
		fpath := filepath.Join(dpath, srcFilename)
		if ok, err := tools.FileExists(fpath); ok {
			found = true
			dirpath = dpath
		} else if err != nil {
			return false, err
		}
	}
	if !found {
		logrus.Debugf(`%v not found in "%v"`, srcFilename, dirpaths)
		return false, nil
	}

	src := filepath.Join(dirpath, srcFilename)
	target := filepath.Join(dirpath, name+".json")

	if err := xjsonnet.RenderToFile(src, target); err != nil {
		return false, err
	}

	logrus.Debugf(`config written to %v`, target)

	return true, nil
}
