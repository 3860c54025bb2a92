// Package seed creates development data on first boot.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData fills an empty database with demo users, communities,
// events, posts, mentors and conversations. A database that already has users
// is left untouched.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	var userCount int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("error checking existing users: %w", err)
	}
	if userCount > 0 {
		lgr.Debug().Int64("users", userCount).Msg("Seed skipped, users already exist")
		return nil
	}

	lgr.Info().Msg("Seeding default data")

	users := []struct {
		name, avatar, email string
	}{
		{"Sezer", "👨‍💻", "sezer@test.com"},
		{"Ahmet", "👤", "ahmet@test.com"},
		{"Ayşe", "👩‍🎓", "ayse@test.com"},
		{"Zeynep Demir", "👩‍🎨", "zeynep@test.com"},
		{"Can Öztürk", "👨‍🔬", "can@test.com"},
	}
	userIDs := make([]int64, len(users))
	for i, u := range users {
		err := pool.QueryRow(ctx,
			"INSERT INTO users (name, avatar, email) VALUES ($1, $2, $3) RETURNING id",
			u.name, u.avatar, u.email).Scan(&userIDs[i])
		if err != nil {
			return fmt.Errorf("error seeding user %s: %w", u.email, err)
		}
	}

	communities := []struct {
		name, avatar, description, category, established string
	}{
		{"Yazılım Kulübü", "💻", "Yazılım geliştirme topluluğu", "Teknoloji", "2020"},
		{"Müzik Kulübü", "🎵", "Müzik severlerin buluşma noktası", "Sanat", "2019"},
		{"Spor Kulübü", "⚽", "Spor etkinlikleri ve turnuvalar", "Spor", "2018"},
		{"Robotik Kulübü", "🤖", "Robot tasarım ve yapım", "Teknoloji", "2021"},
	}
	communityIDs := make([]int64, len(communities))
	for i, c := range communities {
		err := pool.QueryRow(ctx,
			"INSERT INTO communities (name, avatar, description, category, established) VALUES ($1, $2, $3, $4, $5) RETURNING id",
			c.name, c.avatar, c.description, c.category, c.established).Scan(&communityIDs[i])
		if err != nil {
			return fmt.Errorf("error seeding community %s: %w", c.name, err)
		}
	}

	tags := map[int][]string{
		0: {"Python", "JavaScript", "Web", "Mobile"},
		1: {"Gitar", "Konser", "Müzikal"},
		2: {"Futbol", "Basketbol", "Voleybol"},
	}
	for idx, labels := range tags {
		for _, tag := range labels {
			if _, err := pool.Exec(ctx,
				"INSERT INTO community_tags (community_id, tag) VALUES ($1, $2)",
				communityIDs[idx], tag); err != nil {
				return fmt.Errorf("error seeding tags: %w", err)
			}
		}
	}

	members := [][2]int{{0, 0}, {1, 0}, {0, 1}, {0, 2}} // (user, community)
	for _, m := range members {
		if _, err := pool.Exec(ctx,
			"INSERT INTO community_members (user_id, community_id) VALUES ($1, $2)",
			userIDs[m[0]], communityIDs[m[1]]); err != nil {
			return fmt.Errorf("error seeding community members: %w", err)
		}
	}

	followers := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 3}}
	for _, f := range followers {
		if _, err := pool.Exec(ctx,
			"INSERT INTO community_followers (user_id, community_id) VALUES ($1, $2)",
			userIDs[f[0]], communityIDs[f[1]]); err != nil {
			return fmt.Errorf("error seeding community followers: %w", err)
		}
	}

	now := time.Now().UTC()
	events := []struct {
		community                                 int
		title, time, location, image, description string
		date                                      time.Time
		capacity                                  int
	}{
		{0, "Hackathon 2024", "10:00 - 18:00", "Teknoloji Merkezi", "🏆", "Yıllık hackathon etkinliği", now.AddDate(0, 0, 7), 100},
		{1, "Konser Gecesi", "20:00 - 23:00", "Kampüs Amfisi", "🎸", "Kampüs konseri", now.AddDate(0, 0, 14), 200},
		{2, "Futbol Turnuvası", "14:00 - 18:00", "Spor Sahası", "⚽", "Fakülteler arası futbol turnuvası", now.AddDate(0, 0, 3), 150},
		{0, "AI Workshop", "15:00 - 17:00", "Bilgisayar Lab", "🤖", "Yapay zeka workshop", now.AddDate(0, 0, 10), 50},
	}
	eventIDs := make([]int64, len(events))
	for i, e := range events {
		err := pool.QueryRow(ctx,
			`INSERT INTO events (community_id, title, date, time, location, image, description, capacity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			communityIDs[e.community], e.title, e.date, e.time, e.location, e.image, e.description, e.capacity).Scan(&eventIDs[i])
		if err != nil {
			return fmt.Errorf("error seeding event %s: %w", e.title, err)
		}
	}

	interests := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}, {1, 2}} // (user, event)
	for _, in := range interests {
		if _, err := pool.Exec(ctx,
			"INSERT INTO event_interests (user_id, event_id) VALUES ($1, $2)",
			userIDs[in[0]], eventIDs[in[1]]); err != nil {
			return fmt.Errorf("error seeding event interests: %w", err)
		}
	}

	posts := []struct {
		user, community int
		event           int // -1 when none
		content, ptype  string
		mediaType       *string
		mediaURL        *string
	}{
		{1, 0, 0, "Hackathon'a katılacak var mı? Ekip arkadaşı arıyorum!", "event",
			strPtr("image"), strPtr("https://images.unsplash.com/photo-1504384308090-c894fdcc538d")},
		{0, 0, -1, "Yeni proje fikirlerimizi paylaşalım! React Native ile mobil uygulama geliştirmeyi düşünüyorum.", "community", nil, nil},
		{1, 1, 1, "Konser gecesi için biletler satışta! Kaçırmayın 🎵", "event",
			strPtr("video"), strPtr("https://www.w3schools.com/html/mov_bbb.mp4")},
		{2, 2, 2, "Futbol turnuvası başlıyor! Tüm fakülteler davetlidir.", "event",
			strPtr("image"), strPtr("https://images.unsplash.com/photo-1579952363873-27f3bade9f55")},
		{0, 1, -1, "Bu hafta sonu stüdyoda kayıt yapacağız, dinlemeye gelmek isteyen var mı?", "community",
			strPtr("image"), strPtr("https://images.unsplash.com/photo-1598488035139-bdbb2231ce04")},
	}
	for _, p := range posts {
		var eventID interface{}
		if p.event >= 0 {
			eventID = eventIDs[p.event]
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO posts (user_id, community_id, event_id, content, type, media_type, media_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			userIDs[p.user], communityIDs[p.community], eventID, p.content, p.ptype, p.mediaType, p.mediaURL); err != nil {
			return fmt.Errorf("error seeding posts: %w", err)
		}
	}

	mentors := []struct {
		user                int
		title, company, bio string
		availability        string
		rating              float64
		sessions            int
		responseTime        string
		expertise           []string
	}{
		{1, "Senior Software Engineer", "Google",
			"Mobil uygulama geliştirme alanında 8+ yıl deneyim. Kariyer geçişi ve teknik mülakatlarda yardımcı olabilirim.",
			"available", 4.9, 127, "2 saat içinde", []string{"React Native", "TypeScript", "Mobile Dev"}},
		{2, "Product Manager", "Microsoft",
			"Ürün yöneticiliğine geçiş yapmak isteyenlere rehberlik ediyorum. Roadmap ve stratejik düşünme konularında destekçiyim.",
			"available", 4.8, 94, "4 saat içinde", []string{"Product Strategy", "Agile", "User Research"}},
		{3, "Lead UX Designer", "Amazon",
			"Tasarım kariyerinizi planlamak ve portfolio oluşturma konusunda deneyimlerimi paylaşmak isterim.",
			"busy", 5.0, 156, "1 gün içinde", []string{"UI/UX Design", "Figma", "Design Systems"}},
		{4, "Data Scientist", "Netflix",
			"Veri bilimi ve makine öğrenmesi alanında kariyer yapmak isteyenlere yol gösteriyorum.",
			"available", 4.7, 83, "3 saat içinde", []string{"Machine Learning", "Python", "Data Analysis"}},
	}
	mentorIDs := make([]int64, len(mentors))
	for i, m := range mentors {
		err := pool.QueryRow(ctx,
			`INSERT INTO mentors (user_id, title, company, bio, availability, rating, sessions_completed, response_time)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			userIDs[m.user], m.title, m.company, m.bio, m.availability, m.rating, m.sessions, m.responseTime).Scan(&mentorIDs[i])
		if err != nil {
			return fmt.Errorf("error seeding mentor: %w", err)
		}
		for _, skill := range m.expertise {
			if _, err := pool.Exec(ctx,
				"INSERT INTO mentor_expertise (mentor_id, skill) VALUES ($1, $2)",
				mentorIDs[i], skill); err != nil {
				return fmt.Errorf("error seeding mentor expertise: %w", err)
			}
		}
	}

	// Sezer follows the Product Manager mentor
	if _, err := pool.Exec(ctx,
		"INSERT INTO mentor_followers (user_id, mentor_id) VALUES ($1, $2)",
		userIDs[0], mentorIDs[1]); err != nil {
		return fmt.Errorf("error seeding mentor followers: %w", err)
	}

	conversations := []struct {
		user1, user2  int
		lastMessageAt time.Time
	}{
		{0, 1, now},
		{0, 2, now.Add(-2 * time.Hour)},
		{1, 2, now.Add(-24 * time.Hour)},
	}
	convIDs := make([]int64, len(conversations))
	for i, c := range conversations {
		err := pool.QueryRow(ctx,
			"INSERT INTO conversations (user1_id, user2_id, last_message_at) VALUES ($1, $2, $3) RETURNING id",
			userIDs[c.user1], userIDs[c.user2], c.lastMessageAt).Scan(&convIDs[i])
		if err != nil {
			return fmt.Errorf("error seeding conversations: %w", err)
		}
	}

	messages := []struct {
		conv, sender int
		content      string
		isRead       bool
		createdAt    time.Time
	}{
		{0, 0, "Merhaba! Hackathon icin takim kurmak ister misin?", true, now.Add(-3 * time.Hour)},
		{0, 1, "Evet, harika olur! Hangi teknolojileri kullanmayi dusunuyorsun?", true, now.Add(-170 * time.Minute)},
		{0, 0, "React Native ve Flask ile bir mobil uygulama yapmayi dusunuyorum.", false, now.Add(-30 * time.Minute)},
		{1, 2, "Muzik kulubu etkinligine gelecek misin?", true, now.Add(-3 * time.Hour)},
		{1, 0, "Kesinlikle! Saat kacta basliyordu?", true, now.Add(-2 * time.Hour)},
		{2, 1, "Mentorlugun icin tesekkurler!", false, now.Add(-24 * time.Hour)},
	}
	for _, m := range messages {
		if _, err := pool.Exec(ctx,
			"INSERT INTO messages (conversation_id, sender_id, content, is_read, created_at) VALUES ($1, $2, $3, $4, $5)",
			convIDs[m.conv], userIDs[m.sender], m.content, m.isRead, m.createdAt); err != nil {
			return fmt.Errorf("error seeding messages: %w", err)
		}
	}

	lgr.Info().
		Int("users", len(users)).
		Int("communities", len(communities)).
		Int("events", len(events)).
		Int("mentors", len(mentors)).
		Msg("Default data seeded")

	return nil
}

func strPtr(s string) *string {
	return &s
}
