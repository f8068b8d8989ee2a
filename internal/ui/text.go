package ui

import "fmt"

func scoreText(score int) string { return fmt.Sprintf("Score: %d", score) }
func timeText(timeLeft int) string { return fmt.Sprintf("Time: %d", timeLeft) }
func highScoreText(high int) string { return fmt.Sprintf("High Score: %d", high) }
func gameOverText(score int) string { return fmt.Sprintf("Your score: %d", score) }
func savedText(path string) string { return fmt.Sprintf("Drawing saved to:\n%s", path) }
