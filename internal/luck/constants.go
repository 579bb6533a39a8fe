package luck

// BaseLuck is the player's base luck attribute before modifiers
const BaseLuck = 0.0
