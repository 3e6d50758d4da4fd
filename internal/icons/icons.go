// Package icons maps the icon keys authors pick in the CMS to brand icons.
//
// The set of keys is closed. A key that is not registered is reported as
// unknown and callers decide what to draw instead; it is never an error.
package icons

import (
	"fmt"
	"strings"
)

type Key string

const (
	React      Key = "SiReact"
	NextJS     Key = "SiNextdotjs"
	TypeScript Key = "SiTypescript"
	JavaScript Key = "SiJavascript"
	NodeJS     Key = "SiNodedotjs"
	Python     Key = "SiPython"
	Go         Key = "SiGo"
	PostgreSQL Key = "SiPostgresql"
	MongoDB    Key = "SiMongodb"
	Supabase   Key = "SiSupabase"
	Tailwind   Key = "SiTailwindcss"
	Framer     Key = "SiFramer"
	Docker     Key = "SiDocker"
	AWS        Key = "SiAmazonwebservices"
	Vercel     Key = "SiVercel"
	Sanity     Key = "SiSanity"
	Git        Key = "SiGit"
	Figma      Key = "SiFigma"
	Stripe     Key = "SiStripe"
	Vue        Key = "SiVuedotjs"
	OpenAI     Key = "SiOpenai"
	NestJS     Key = "SiNestjs"
	Storybook  Key = "SiStorybook"
	Shopify    Key = "SiShopify"
	Netlify    Key = "SiNetlify"
)

// Icon is rendered as a Simple Icons glyph tinted with Color.
type Icon struct {
	Key   Key
	Label string
	Slug  string
	Color string
}

// URL returns the glyph URL tinted with color, or with the brand color when
// color is empty.
func (i Icon) URL(color string) string {
	if color == "" {
		color = i.Color
	}
	return fmt.Sprintf("https://cdn.simpleicons.org/%s/%s", i.Slug, strings.TrimPrefix(color, "#"))
}

var registry = map[Key]Icon{
	React:      {React, "React", "react", "#61DAFB"},
	NextJS:     {NextJS, "Next.js", "nextdotjs", "#000000"},
	TypeScript: {TypeScript, "TypeScript", "typescript", "#3178C6"},
	JavaScript: {JavaScript, "JavaScript", "javascript", "#F7DF1E"},
	NodeJS:     {NodeJS, "Node.js", "nodedotjs", "#339933"},
	Python:     {Python, "Python", "python", "#3776AB"},
	Go:         {Go, "Go", "go", "#00ADD8"},
	PostgreSQL: {PostgreSQL, "PostgreSQL", "postgresql", "#336791"},
	MongoDB:    {MongoDB, "MongoDB", "mongodb", "#47A248"},
	Supabase:   {Supabase, "Supabase", "supabase", "#3ECF8E"},
	Tailwind:   {Tailwind, "Tailwind CSS", "tailwindcss", "#06B6D4"},
	Framer:     {Framer, "Framer Motion", "framer", "#0055FF"},
	Docker:     {Docker, "Docker", "docker", "#2496ED"},
	AWS:        {AWS, "AWS", "amazonwebservices", "#FF9900"},
	Vercel:     {Vercel, "Vercel", "vercel", "#000000"},
	Sanity:     {Sanity, "Sanity", "sanity", "#F03E2F"},
	Git:        {Git, "Git", "git", "#F05032"},
	Figma:      {Figma, "Figma", "figma", "#F24E1E"},
	Stripe:     {Stripe, "Stripe", "stripe", "#635BFF"},
	Vue:        {Vue, "Vue.js", "vuedotjs", "#4FC08D"},
	OpenAI:     {OpenAI, "OpenAI", "openai", "#412991"},
	NestJS:     {NestJS, "NestJS", "nestjs", "#E0234E"},
	Storybook:  {Storybook, "Storybook", "storybook", "#FF4785"},
	Shopify:    {Shopify, "Shopify", "shopify", "#7AB55C"},
	Netlify:    {Netlify, "Netlify", "netlify", "#00C7B7"},
}

// names maps the technology names used on project cards to icon keys.
// Lookups are case-insensitive.
var names = map[string]Key{
	"react":         React,
	"react.js":      React,
	"next.js":       NextJS,
	"nextjs":        NextJS,
	"typescript":    TypeScript,
	"javascript":    JavaScript,
	"node.js":       NodeJS,
	"nodejs":        NodeJS,
	"python":        Python,
	"go":            Go,
	"golang":        Go,
	"postgresql":    PostgreSQL,
	"postgres":      PostgreSQL,
	"mongodb":       MongoDB,
	"supabase":      Supabase,
	"tailwind":      Tailwind,
	"tailwind.css":  Tailwind,
	"tailwindcss":   Tailwind,
	"tailwind css":  Tailwind,
	"framer motion": Framer,
	"framer":        Framer,
	"docker":        Docker,
	"aws":           AWS,
	"vercel":        Vercel,
	"sanity":        Sanity,
	"sanity.io":     Sanity,
	"git":           Git,
	"figma":         Figma,
	"stripe":        Stripe,
	"vue.js":        Vue,
	"vue":           Vue,
	"openai":        OpenAI,
	"nest.js":       NestJS,
	"nestjs":        NestJS,
	"storybook":     Storybook,
	"storyblok":     Storybook,
	"shopify":       Shopify,
	"netlify":       Netlify,
}

// ByKey looks up an icon by its CMS key, e.g. "SiReact".
func ByKey(key string) (Icon, bool) {
	icon, ok := registry[Key(strings.TrimSpace(key))]
	return icon, ok
}

// ByName looks up an icon by technology name, e.g. "React.js".
func ByName(name string) (Icon, bool) {
	key, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Icon{}, false
	}
	return registry[key], true
}

// Resolve tries the explicit key first and falls back to the name.
func Resolve(key, name string) (Icon, bool) {
	if icon, ok := ByKey(key); ok {
		return icon, true
	}
	return ByName(name)
}

// Monogram is the placeholder text drawn for a technology without an icon.
func Monogram(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}
