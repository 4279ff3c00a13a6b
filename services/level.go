package services

import "github.com/goalsync/goalsync/models"

// LevelInfo pairs the tier an XP total sits in with the following tier, if
// any.
type LevelInfo struct {
	Current models.LevelDef
	Next    *models.LevelDef
}

// LevelFor returns the highest level whose min_xp does not exceed xp. The
// level table is validated ascending at boot, so a single forward scan finds
// the last qualifying tier.
func LevelFor(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}
	info := LevelInfo{Current: models.Levels[0]}
	if len(models.Levels) > 1 {
		next := models.Levels[1]
		info.Next = &next
	}
	for i, lvl := range models.Levels {
		if xp < lvl.MinXP {
			break
		}
		info.Current = lvl
		info.Next = nil
		if i+1 < len(models.Levels) {
			next := models.Levels[i+1]
			info.Next = &next
		}
	}
	return info
}

// LevelProgress reports how far xp has climbed into the current tier.
// XPToNext is 0 and the percentage 100 at the top tier.
func LevelProgress(xp int) (xpToNext int, progressPercent float64) {
	info := LevelFor(xp)
	if info.Next == nil {
		return 0, 100
	}
	span := info.Next.MinXP - info.Current.MinXP
	progressPercent = float64(xp-info.Current.MinXP) / float64(span) * 100
	return info.Next.MinXP - xp, progressPercent
}
