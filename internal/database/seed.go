package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with sample portfolio content for
// development. It is a no-op when blog posts already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM blog_posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check blog posts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO blog_posts (title, excerpt, content, image_url, category, read_time, featured, published) VALUES
		('Building Scalable Microservices with Docker and Kubernetes',
		 'Dive deep into containerization strategies and orchestration patterns that power modern cloud-native applications.',
		 'Full article content about microservices architecture, containerization best practices, and Kubernetes orchestration patterns.',
		 'https://images.unsplash.com/photo-1605745341112-85968b19335b?auto=format&fit=crop&w=800&h=600',
		 'DevOps', '12 min read', true, true),
		('Advanced React Hooks Patterns',
		 'Exploring custom hooks, context patterns, and state management strategies for complex React applications.',
		 'Deep dive into React hooks patterns, custom hooks creation, and advanced state management techniques.',
		 'https://images.unsplash.com/photo-1633356122544-f134324a6cee?auto=format&fit=crop&w=800&h=400',
		 'React', '8 min read', false, true),
		('Getting Started with TensorFlow 2.0',
		 'A comprehensive guide to building your first neural network with TensorFlow and understanding core concepts.',
		 'Complete tutorial on TensorFlow 2.0, covering neural network fundamentals, model building, and deployment.',
		 'https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&h=400',
		 'AI/ML', '10 min read', false, true)
	`)
	if err != nil {
		return fmt.Errorf("seed blog posts: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO projects (title, description, video_id, tech_stack, demo_url, github_url, featured, published) VALUES
		('Full-Stack E-commerce Platform',
		 'A complete e-commerce solution with user authentication, payment processing, inventory management, and an admin dashboard.',
		 'dQw4w9WgXcQ',
		 '["React", "Node.js", "PostgreSQL", "AWS", "Stripe"]',
		 'https://demo.example.com', 'https://github.com/user/ecommerce', true, true),
		('AI-Powered Chat Application',
		 'An intelligent chat application with real-time messaging, conversation history, and custom AI personas.',
		 'dQw4w9WgXcQ',
		 '["Next.js", "OpenAI API", "Socket.io", "Redis", "TypeScript"]',
		 'https://chat.example.com', 'https://github.com/user/ai-chat', false, true),
		('Real-time Analytics Dashboard',
		 'An analytics platform processing millions of data points in real time, with interactive charts and report generation.',
		 'dQw4w9WgXcQ',
		 '["React", "D3.js", "Python", "FastAPI", "MongoDB"]',
		 'https://analytics.example.com', 'https://github.com/user/analytics', false, true)
	`)
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	slog.Info("database seeded with sample content")
	return nil
}
