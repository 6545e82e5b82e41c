package service

import (
	"context"

	"github.com/Sari-Dot/Myquiz/internal/models"
)

// SeedStarterSet inserts the bundled starter questions as fresh creates. Each
// run mints new ids and timestamps, so running it twice doubles the content.
// Returns how many questions were inserted.
func (s *QuestionService) SeedStarterSet(ctx context.Context) (int, error) {
	seeded := 0
	for _, input := range StarterQuestions() {
		if _, err := s.Create(ctx, input); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}

// StarterQuestions returns the bundled starter set spanning all three levels.
func StarterQuestions() []models.QuestionInput {
	return []models.QuestionInput{
		// Easy
		{Level: models.LevelEasy, Question: "Hitung 12 × 8", Answers: []string{"84", "96", "102", "88"}, Correct: correctIdx(1), Hint: "Pikirkan 12 kali 8. Pecah menjadi: 10×8 + 2×8."},
		{Level: models.LevelEasy, Question: "Berapa 45 + 37?", Answers: []string{"82", "81", "83", "80"}, Correct: correctIdx(0), Hint: "Tambahkan puluhan dulu: 40+30=70, lalu 5+7=12."},
		{Level: models.LevelEasy, Question: "Berapa 144 ÷ 12?", Answers: []string{"11", "13", "12", "14"}, Correct: correctIdx(2), Hint: "Berapa banyak 12 dalam 144? Pikirkan 12×12."},
		{Level: models.LevelEasy, Question: "Berapa 7 × 9?", Answers: []string{"54", "56", "63", "72"}, Correct: correctIdx(2), Hint: "7×9 mendekati 7×10. Kurangi 7 dari 70."},
		{Level: models.LevelEasy, Question: "Berapa 100 - 47?", Answers: []string{"53", "57", "52", "54"}, Correct: correctIdx(0), Hint: "100 dikurangi 50 adalah 50. Tambahkan 3 karena kita kurangi 3 terlalu banyak."},
		// Medium
		{Level: models.LevelMedium, Question: "Berapa 17²?", Answers: []string{"279", "289", "299", "309"}, Correct: correctIdx(1), Hint: "Gunakan (a+b)²: 17² = (20-3)² = 400 - 120 + 9."},
		{Level: models.LevelMedium, Question: "Selesaikan: 3x + 7 = 22", Answers: []string{"x = 4", "x = 5", "x = 6", "x = 7"}, Correct: correctIdx(1), Hint: "Kurangi 7 dari kedua sisi terlebih dahulu, lalu bagi dengan 3."},
		{Level: models.LevelMedium, Question: "Berapa √225?", Answers: []string{"13", "14", "15", "16"}, Correct: correctIdx(2), Hint: "Pikirkan bilangan kuadrat sempurna: 15×15 = 225."},
		// Hard
		{Level: models.LevelHard, Question: "Evaluasi: lim(x→0) sin(x)/x", Answers: []string{"0", "1", "∞", "tak terdefinisi"}, Correct: correctIdx(1), Hint: "Ini adalah limit standar. Perilaku fungsi sinus mendekati nol adalah kuncinya."},
		{Level: models.LevelHard, Question: "Berapa ∫x² dx?", Answers: []string{"x³/3 + C", "x³ + C", "2x + C", "x²/2 + C"}, Correct: correctIdx(0), Hint: "Aturan pangkat: naikkan pangkat 1, bagi dengan pangkat baru."},
	}
}

func correctIdx(i int) *int {
	return &i
}
