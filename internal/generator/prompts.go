package generator

// Prompt templates carried over from the original deployment; the audience and
// the recordings are Thai, so the instructions stay Thai.

const postPrompt = `คุณเป็นผู้เชี่ยวชาญในการสร้างเนื้อหาธรรมะสำหรับ Social Media

จากเนื้อหาการสอนธรรมะต่อไปนี้:
%s

กรุณาสร้าง social media post ที่:
1. เริ่มต้นด้วย hook ที่ดึงดูดความสนใจและสัมผัสใจ
2. สรุปเนื้อหาธรรมะให้กระชับ เข้าใจง่าย และมีคุณค่า
3. ใช้น้ำเสียงที่อบอุ่น เป็นกันเอง แต่สื่อถึงความลึกซึ้งของธรรมะ
4. ใช้ emoji ที่เหมาะสม 2-3 ตัว (เช่น 🙏 ✨ 💫 🌟 ☸️)
5. จบด้วย call-to-action หรือคำถามเพื่อกระตุ้นการไตร่ตรอง
6. ใส่ hashtags ที่เกี่ยวข้องกับธรรมะ 5-8 อัน

หมวดหมู่: %s
น้ำเสียง: สอนธรรมะ อบอุ่น สร้างแรงบันดาลใจ

รูปแบบ:
[Hook ที่สัมผัสใจ]

[เนื้อหาธรรมะที่กระชับและลึกซึ้ง 2-3 ประโยค]

[Call-to-action หรือคำถามเพื่อให้ไตร่ตรอง]

#hashtag1 #hashtag2 #hashtag3 ...

กรุณาสร้างโพสต์ที่สวยงาม เหมาะสำหรับโพสต์บน Facebook, Instagram, หรือ Line`

const essencePrompt = `จากเนื้อหาธรรมะนี้ ช่วยสรุปเป็น "แก่นธรรม 3 ข้อ"
เพื่อนำไปทำภาพกราฟิกแบบ Checklist หรือ Carousel
ขอภาษาที่กระชับ อ่านง่าย เหมือนสรุป Key Takeaway ให้คนอ่าน
และขอ "พาดหัวเรื่อง" (Headline) ที่น่าสนใจสำหรับโพสต์นี้ด้วย 1 ชื่อ

เนื้อหา:
%s

กรุณาตอบในรูปแบบ JSON:
{
    "headline": "พาดหัวที่น่าสนใจ",
    "essence_1": "แก่นธรรมข้อที่ 1",
    "essence_2": "แก่นธรรมข้อที่ 2",
    "essence_3": "แก่นธรรมข้อที่ 3",
    "quote": "คำคมสั้นๆ ที่สรุปใจความสำคัญ"
}

เงื่อนไข:
- Headline: ไม่เกิน 60 ตัวอักษร น่าสนใจ ดึงดูดใจ
- แก่นธรรมแต่ละข้อ: ไม่เกิน 100 ตัวอักษร กระชับ ชัดเจน
- Quote: ไม่เกิน 150 ตัวอักษร สั้น กระทบใจ จดจำง่าย`

const analysisPrompt = `วิเคราะห์เนื้อหาธรรมะต่อไปนี้และสกัด 5-8 keywords ที่สำคัญ:

%s

กรุณาตอบในรูปแบบ JSON:
{
    "keywords": ["keyword1", "keyword2", ...],
    "main_teaching": "หลักธรรมะหลักที่สอน",
    "emotion": "อารมณ์/ความรู้สึกที่ต้องการสื่อ"
}

keywords ควรเป็น:
- คำภาษาไทยที่เกี่ยวกับธรรมะ
- เหมาะสำหรับทำ hashtag
- สั้น กระชับ มีความหมาย`
