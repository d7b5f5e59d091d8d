package project

import (
	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/framework"
)

// Documented defaults applied by Validate when a field is absent.
const (
	DefaultBaseColor   = "slate"
	DefaultIconLibrary = "lucide"
)

// BaseColors lists the accepted tailwind.baseColor values.
var BaseColors = []string{"slate", "gray", "zinc", "neutral", "stone"}

// IconLibraries lists the accepted iconLibrary values.
var IconLibraries = []string{"lucide", "radix"}

type frameworkDefaults struct {
	css            string
	tailwindConfig string
	aliases        Aliases
}

var defaultsByFramework = framework.Table[frameworkDefaults]{
	framework.Angular: {
		css:            "src/styles.css",
		tailwindConfig: "tailwind.config.js",
		aliases: Aliases{
			Components: "@/app/components",
			Utils:      "@/app/lib/utils",
			UI:         "@/app/components/ui",
			Lib:        "@/app/lib",
		},
	},
	framework.React: {
		css:            "src/index.css",
		tailwindConfig: "tailwind.config.js",
		aliases: Aliases{
			Components: "@/components",
			Utils:      "@/lib/utils",
			UI:         "@/components/ui",
			Lib:        "@/lib",
			Hooks:      "@/hooks",
		},
	},
	framework.Vue: {
		css:            "src/assets/index.css",
		tailwindConfig: "tailwind.config.js",
		aliases: Aliases{
			Components: "@/components",
			Utils:      "@/lib/utils",
			UI:         "@/components/ui",
			Lib:        "@/lib",
		},
	},
}

// iconPackages maps an icon library choice to its npm package per framework.
var iconPackages = map[string]framework.Table[string]{
	"lucide": {
		framework.Angular: "lucide-angular",
		framework.React:   "lucide-react",
		framework.Vue:     "lucide-vue-next",
	},
	"radix": {
		framework.Angular: "@ng-icons/radix-icons",
		framework.React:   "@radix-ui/react-icons",
		framework.Vue:     "@radix-icons/vue",
	},
}

// UtilityPackages are the class-merging packages every project needs. Their
// joint presence marks a project as already initialized.
var UtilityPackages = []string{"clsx", "tailwind-merge", "class-variance-authority"}

// Default returns the conventional config for fw. The framework must be valid.
func Default(fw framework.Framework) *Config {
	d := defaultsByFramework.MustFor(fw)
	return &Config{
		Schema:      branding.SchemaURL(),
		Framework:   fw,
		TypeScript:  true,
		IconLibrary: DefaultIconLibrary,
		Tailwind: Tailwind{
			Config:       d.tailwindConfig,
			CSS:          d.css,
			BaseColor:    DefaultBaseColor,
			CSSVariables: true,
		},
		Aliases: d.aliases,
	}
}

// BaseDependencies returns the runtime packages init installs: the icon
// library for the configured framework plus the class-merging utilities.
func (c *Config) BaseDependencies() []string {
	deps := make([]string, 0, len(UtilityPackages)+1)
	if table, ok := iconPackages[c.IconLibrary]; ok {
		if pkg, ok := table.For(c.Framework); ok {
			deps = append(deps, pkg)
		}
	}
	return append(deps, UtilityPackages...)
}
