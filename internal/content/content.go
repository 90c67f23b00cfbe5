// Package content is the static copy shown on the landing page.
package content

const (
	Brand       = "Frontend Mastery"
	ProductName = "Frontend Mastery Cheatsheet"
	Price       = "$9"
	Year        = 2024
)

type Link struct {
	Name string
	Href string
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Testimonial struct {
	Name    string
	Role    string
	Content string
	Rating  int
}

var NavLinks = []Link{
	{Name: "HTML", Href: "#html"},
	{Name: "CSS", Href: "#css"},
	{Name: "JavaScript", Href: "#javascript"},
	{Name: "Tailwind", Href: "#tailwind"},
	{Name: "React", Href: "#react"},
}

var Features = []Feature{
	{
		Icon:        "lucide:code-2",
		Title:       "100+ Code Snippets",
		Description: "Ready-to-use code examples for HTML, CSS, JavaScript, and Tailwind CSS",
	},
	{
		Icon:        "lucide:zap",
		Title:       "Performance Tips",
		Description: "Optimization techniques and best practices to make your code lightning fast",
	},
	{
		Icon:        "lucide:book-open",
		Title:       "Visual Examples",
		Description: "Beautiful layouts and interactive examples that you can copy and customize",
	},
}

var Inside = []string{
	"HTML5 semantic elements and accessibility tips",
	"CSS Grid and Flexbox mastery guide",
	"JavaScript ES6+ features and shortcuts",
	"Tailwind CSS utility classes and components",
	"Responsive design patterns and breakpoints",
	"Performance optimization techniques",
	"Browser developer tools shortcuts",
	"Git commands and workflow tips",
}

var Testimonials = []Testimonial{
	{
		Name:    "Sarah Chen",
		Role:    "Frontend Developer",
		Content: "This cheatsheet saved me hours of googling. The code snippets are exactly what I needed for my daily work.",
		Rating:  5,
	},
	{
		Name:    "Mike Rodriguez",
		Role:    "Web Developer",
		Content: "Perfect for quick reference! The Tailwind CSS section alone is worth the price. Highly recommended.",
		Rating:  5,
	},
	{
		Name:    "Emily Johnson",
		Role:    "Junior Developer",
		Content: "As someone new to frontend development, this guide helped me understand best practices quickly.",
		Rating:  5,
	},
}

// PreviewSnippet is the code shown in the hero card.
var PreviewSnippet = []string{
	"// CSS Flexbox Cheat",
	"display: flex;",
	"justify-content: center;",
	"align-items: center;",
}
