package explorer

import (
	"fmt"
	"strings"
)

// Owner is the person the portfolio belongs to.
type Owner struct {
	Name     string
	Email    string
	LinkedIn string
}

// DefaultOwner is used when the configuration leaves owner fields empty.
var DefaultOwner = Owner{
	Name:     "Umair Anwar",
	Email:    "umairanwrr@gmail.com",
	LinkedIn: "https://www.linkedin.com/in/umair-anwar-365986317",
}

// WithDefaults fills empty fields from DefaultOwner.
func (o Owner) WithDefaults() Owner {
	if o.Name == "" {
		o.Name = DefaultOwner.Name
	}
	if o.Email == "" {
		o.Email = DefaultOwner.Email
	}
	if o.LinkedIn == "" {
		o.LinkedIn = DefaultOwner.LinkedIn
	}
	return o
}

// LinkKind says what activating a link does.
type LinkKind int

const (
	LinkURL LinkKind = iota
	LinkEmail
)

// Link is an actionable line in a dialog.
type Link struct {
	Label  string   `json:"label"`
	Target string   `json:"target"`
	Kind   LinkKind `json:"-"`
}

// Image is a clickable screenshot.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Content is the body of a dialog.
type Content struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	Tech       []string `json:"tech,omitempty"`
	Status     string   `json:"status,omitempty"`
	Links      []Link   `json:"links,omitempty"`
	Images     []Image  `json:"images,omitempty"`
}

func screenshots(prefix, label string, n int) []Image {
	out := make([]Image, n)
	for i := range out {
		out[i] = Image{
			Src: fmt.Sprintf("/projects/%s%d.png", prefix, i+1),
			Alt: fmt.Sprintf("%s Screenshot %d", label, i+1),
		}
	}
	return out
}

// ContentFor returns the body of dialog k for owner.
func ContentFor(k Kind, owner Owner) Content {
	owner = owner.WithDefaults()
	switch k {
	case KindAbout:
		return Content{
			Heading: strings.ToUpper(owner.Name),
			Paragraphs: []string{
				"COMBINING DESIGN EXPERTISE WITH FULL STACK DEVELOPMENT.",
				"SPECIALIZED IN CRAFTING EXPERIENCE-DRIVEN WEBSITES THAT STAND OUT THROUGH BOLD DESIGN, SEAMLESS MOTION, AND INNOVATIVE FUNCTIONALITY.",
				"CURRENTLY WORKING AS A FREELANCER ON OCCASSION.",
			},
		}
	case KindContact:
		return Content{
			Heading:    "Get in Touch",
			Paragraphs: []string{"Email: " + owner.Email},
			Links: []Link{
				{Label: "Copy e-mail", Target: owner.Email, Kind: LinkEmail},
				{Label: "Linkedin", Target: owner.LinkedIn, Kind: LinkURL},
			},
		}
	case KindFirstBus:
		return Content{
			Heading: "FirstBus: Easy Transport for Students",
			Paragraphs: []string{
				"This Flutter app, powered by Firebase, helps students track their school bus in real-time. It shows the live location of the bus, helps students find the nearest stop, and sends notifications when the bus is arriving. The app also includes a chat feature for students and drivers to communicate.",
			},
			Tech: []string{"Flutter", "Dart", "Firebase"},
			Links: []Link{
				{Label: "Download APK", Target: "https://drive.google.com/file/d/1bWunvvWKwG31CA5MXthiZuMrSTCx1VYA/view?usp=sharing"},
			},
			Images: screenshots("bus", "FirstBus", 4),
		}
	case KindRetailVista:
		return Content{
			Heading: "RetailVista - AI Powered Shoplifting Detection System",
			Paragraphs: []string{
				"Smart shoplifting detection and AR navigation system is built using React and Django. It helps store owners detect suspicious activity in real-time and guide customers to find products easily using AR maps. The system integrates AI-powered surveillance to prevent theft and an augmented reality (AR) feature to improve the shopping experience.",
			},
			Tech:   []string{"React JS", "Django", "Computer Vision", "Machine Learning", "Real-time Analytics"},
			Status: "Under Development",
			Images: screenshots("retail", "RetailVista", 3),
		}
	case KindLondonConsultants:
		return Content{
			Heading: "London-Consultants",
			Paragraphs: []string{
				"Simple and user-friendly visa consultation website built with Laravel. It allows users to explore visa services for different countries and book an appointment if they need consultation. The platform is designed to provide clear information and an easy booking process.",
			},
			Tech: []string{"Laravel", "PHP"},
			Links: []Link{
				{Label: "Visit Website", Target: "https://london-consultants.com/"},
			},
			Images: screenshots("london", "London-Consultants", 4),
		}
	}
	return Content{}
}

// Markdown renders c as a markdown document. Images are listed by alt text;
// the UI renders them separately.
func (c Content) Markdown() string {
	var sb strings.Builder
	if c.Heading != "" {
		sb.WriteString("## " + c.Heading + "\n\n")
	}
	for _, p := range c.Paragraphs {
		sb.WriteString(p + "\n\n")
	}
	if len(c.Tech) > 0 {
		sb.WriteString("Tech Used:\n\n")
		for _, t := range c.Tech {
			sb.WriteString("- " + t + "\n")
		}
		sb.WriteString("\n")
	}
	if c.Status != "" {
		sb.WriteString("*" + c.Status + "*\n\n")
	}
	for _, l := range c.Links {
		if l.Kind == LinkEmail {
			continue
		}
		fmt.Fprintf(&sb, "[%s](%s)\n\n", l.Label, l.Target)
	}
	for _, img := range c.Images {
		fmt.Fprintf(&sb, "- %s (%s)\n", img.Alt, img.Src)
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
